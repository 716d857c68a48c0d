// Package auth issues and resolves bearer credentials. A credential is an
// HS256 JWT whose jti must still be present in the redis session set;
// revoking deletes the session key, so revocation takes effect immediately
// even though the signature stays valid until exp.
package auth

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const TokenTTL = 24 * time.Hour

var ErrUnauthenticated = errors.New("unauthenticated")

type Service struct {
	rdb    *redis.Client
	secret []byte
}

func New(addr, password, secret string) *Service {
	return NewWithClient(
		redis.NewClient(&redis.Options{Addr: addr, Password: password}),
		secret,
	)
}

func NewWithClient(rdb *redis.Client, secret string) *Service {
	return &Service{rdb: rdb, secret: []byte(secret)}
}

// Issue signs a token for the user and registers its session.
func (s *Service) Issue(ctx context.Context, userID uint) (string, error) {
	jti := uuid.NewString()
	now := time.Now()

	claims := jwt.MapClaims{
		"sub": float64(userID),
		"jti": jti,
		"iat": now.Unix(),
		"exp": now.Add(TokenTTL).Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", err
	}

	err = s.rdb.Set(ctx, sessionKey(jti), strconv.FormatUint(uint64(userID), 10), TokenTTL).Err()
	if err != nil {
		return "", err
	}

	return token, nil
}

// Resolve returns the user behind a token. A token whose session was
// revoked resolves to ErrUnauthenticated even if its signature is valid.
func (s *Service) Resolve(ctx context.Context, tokenString string) (uint, string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, "", ErrUnauthenticated
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", ErrUnauthenticated
	}

	sub, ok1 := claims["sub"].(float64)
	jti, ok2 := claims["jti"].(string)
	if !ok1 || !ok2 {
		return 0, "", ErrUnauthenticated
	}

	stored, err := s.rdb.Get(ctx, sessionKey(jti)).Result()
	if err == redis.Nil {
		return 0, "", ErrUnauthenticated
	}
	if err != nil {
		return 0, "", err
	}

	userID, err := strconv.ParseUint(stored, 10, 64)
	if err != nil || uint(userID) != uint(sub) {
		return 0, "", ErrUnauthenticated
	}

	return uint(userID), jti, nil
}

// Revoke removes the session; the token stops resolving at once.
func (s *Service) Revoke(ctx context.Context, jti string) error {
	return s.rdb.Del(ctx, sessionKey(jti)).Err()
}

func sessionKey(jti string) string {
	return "session:" + jti
}
