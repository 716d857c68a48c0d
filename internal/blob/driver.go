package blob

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Driver writes blob bytes under a key. The key doubles as the public
// reference stored on the owning record.
type Driver interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Delete(ctx context.Context, key string) error
}

// --------------------------------------------------
// Disk
// --------------------------------------------------

type DiskDriver struct {
	root string
}

func NewDiskDriver(root string) *DiskDriver {
	return &DiskDriver{root: root}
}

func (d *DiskDriver) Put(ctx context.Context, key string, data []byte, contentType string) error {
	path := filepath.Join(d.root, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func (d *DiskDriver) Delete(ctx context.Context, key string) error {
	err := os.Remove(filepath.Join(d.root, filepath.FromSlash(key)))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// --------------------------------------------------
// S3
// --------------------------------------------------

type S3Driver struct {
	client *s3.Client
	bucket string
}

func NewS3Driver(region, accessKey, secretKey, bucket string) *S3Driver {
	cfg := aws.Config{
		Region:      region,
		Credentials: credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
	}
	return &S3Driver{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
	}
}

func (d *S3Driver) Put(ctx context.Context, key string, data []byte, contentType string) error {
	_, err := d.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(d.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	return err
}

func (d *S3Driver) Delete(ctx context.Context, key string) error {
	_, err := d.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(d.bucket),
		Key:    aws.String(key),
	})
	return err
}
