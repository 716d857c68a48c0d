package auth_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rahhal-app/tourism-api/internal/auth"
)

func newService(t *testing.T) *auth.Service {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return auth.NewWithClient(rdb, "test-secret")
}

func TestIssueAndResolve(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	token, err := svc.Issue(ctx, 42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, jti, err := svc.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
	assert.NotEmpty(t, jti)
}

func TestResolveGarbageToken(t *testing.T) {
	svc := newService(t)

	_, _, err := svc.Resolve(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, auth.ErrUnauthenticated)
}

func TestResolveForeignSignature(t *testing.T) {
	ctx := context.Background()

	other := newService(t)
	token, err := other.Issue(ctx, 7)
	require.NoError(t, err)

	svc := newService(t)
	_, _, err = svc.Resolve(ctx, token)
	assert.ErrorIs(t, err, auth.ErrUnauthenticated)
}

func TestRevokeIsImmediate(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	token, err := svc.Issue(ctx, 9)
	require.NoError(t, err)

	_, jti, err := svc.Resolve(ctx, token)
	require.NoError(t, err)

	require.NoError(t, svc.Revoke(ctx, jti))

	// The signature is still valid, but the session is gone.
	_, _, err = svc.Resolve(ctx, token)
	assert.ErrorIs(t, err, auth.ErrUnauthenticated)
}

func TestRevokeOneSessionKeepsOthers(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	first, err := svc.Issue(ctx, 5)
	require.NoError(t, err)
	second, err := svc.Issue(ctx, 5)
	require.NoError(t, err)

	_, jti, err := svc.Resolve(ctx, first)
	require.NoError(t, err)
	require.NoError(t, svc.Revoke(ctx, jti))

	_, _, err = svc.Resolve(ctx, first)
	assert.ErrorIs(t, err, auth.ErrUnauthenticated)

	userID, _, err := svc.Resolve(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, uint(5), userID)
}
