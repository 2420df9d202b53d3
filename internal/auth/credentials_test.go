package auth_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/hdforge/go-wallet/internal/auth"
	"github/hdforge/go-wallet/internal/store"
)

type countingAuthenticator struct {
	calls atomic.Int32
}

func (a *countingAuthenticator) Authenticate(_ context.Context, email string, password string) (*store.Account, error) {
	a.calls.Add(1)
	if password != "correct horse" {
		return nil, store.ErrInvalidCredentials
	}
	return &store.Account{ID: "id-" + email, Email: email}, nil
}

func TestCredentialCache(t *testing.T) {
	ctx := t.Context()
	next := &countingAuthenticator{}

	cache, err := auth.NewCredentialCache(next, 8, time.Minute)
	require.NoError(t, err)

	account, err := cache.Authenticate(ctx, "a@example.com", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, "id-a@example.com", account.ID)

	again, err := cache.Authenticate(ctx, "a@example.com", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, account, again)
	assert.Equal(t, int32(1), next.calls.Load())
	assert.Equal(t, 1, cache.Len())

	// callers get their own copy
	again.Email = "changed"
	third, err := cache.Authenticate(ctx, "a@example.com", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", third.Email)

	_, err = cache.Authenticate(ctx, "a@example.com", "wrong horse")
	require.ErrorIs(t, err, store.ErrInvalidCredentials)
	_, err = cache.Authenticate(ctx, "a@example.com", "wrong horse")
	require.ErrorIs(t, err, store.ErrInvalidCredentials)
	assert.Equal(t, int32(3), next.calls.Load())
	assert.Equal(t, 1, cache.Len())

	other, err := cache.Authenticate(ctx, "b@example.com", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, "id-b@example.com", other.ID)
	assert.Equal(t, 2, cache.Len())
}

func TestCredentialCacheExpires(t *testing.T) {
	ctx := t.Context()
	next := &countingAuthenticator{}

	cache, err := auth.NewCredentialCache(next, 8, 20*time.Millisecond)
	require.NoError(t, err)

	_, err = cache.Authenticate(ctx, "a@example.com", "correct horse")
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return cache.Len() == 0
	}, time.Second, 10*time.Millisecond)

	_, err = cache.Authenticate(ctx, "a@example.com", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, int32(2), next.calls.Load())
}

func TestCredentialCacheDisabled(t *testing.T) {
	ctx := t.Context()
	next := &countingAuthenticator{}

	cache, err := auth.NewCredentialCache(next, 8, 0)
	require.NoError(t, err)

	for range 3 {
		_, err := cache.Authenticate(ctx, "a@example.com", "correct horse")
		require.NoError(t, err)
	}
	assert.Equal(t, int32(3), next.calls.Load())
	assert.Equal(t, 0, cache.Len())
}
