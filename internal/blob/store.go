// Package blob stores uploaded images and hands back a stable reference.
// Names are always generated server-side; client filenames are never
// trusted, so references cannot collide or traverse paths.
package blob

import (
	"context"
	"errors"
	"io"
	"log"
	"mime/multipart"
	"path"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrTooLarge        = errors.New("blob: file exceeds size limit")
	ErrUnsupportedType = errors.New("blob: unsupported content type")
)

var contentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".svg":  "image/svg+xml",
}

type Service struct {
	driver   Driver
	maxBytes int64
}

func NewService(driver Driver, maxBytes int64) *Service {
	return &Service{driver: driver, maxBytes: maxBytes}
}

// Store validates the upload and writes it under dir, returning the
// generated reference (e.g. "hotels/3f1c....jpg"). allowSVG widens the
// accepted set for the entities whose contract includes it.
func (s *Service) Store(ctx context.Context, fh *multipart.FileHeader, dir string, allowSVG bool) (string, error) {
	ext := strings.ToLower(path.Ext(fh.Filename))

	contentType, ok := contentTypes[ext]
	if !ok || (ext == ".svg" && !allowSVG) {
		return "", ErrUnsupportedType
	}

	if fh.Size > s.maxBytes {
		return "", ErrTooLarge
	}

	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, s.maxBytes+1))
	if err != nil {
		return "", err
	}
	if int64(len(data)) > s.maxBytes {
		return "", ErrTooLarge
	}

	ref := path.Join(dir, uuid.NewString()+ext)
	if err := s.driver.Put(ctx, ref, data, contentType); err != nil {
		return "", err
	}

	// Thumbnails are best effort; a broken or vector image still uploads.
	if ext != ".svg" {
		if thumb, err := thumbnail(data, thumbWidth); err == nil {
			if err := s.driver.Put(ctx, ref+".thumb.webp", thumb, "image/webp"); err != nil {
				log.Printf("blob: thumbnail write failed for %s: %v", ref, err)
			}
		}
	}

	return ref, nil
}

// Remove deletes a stored blob together with its thumbnail. Used to roll
// an upload back when the owning record fails to persist.
func (s *Service) Remove(ctx context.Context, ref string) {
	if ref == "" {
		return
	}
	if err := s.driver.Delete(ctx, ref); err != nil {
		log.Printf("blob: delete failed for %s: %v", ref, err)
	}
	_ = s.driver.Delete(ctx, ref+".thumb.webp")
}
