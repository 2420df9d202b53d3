package auth

import (
	"context"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/pkg/errors"
	"github/hdforge/go-wallet/internal/store"
)

const cacheKeySize = 32

// Authenticator checks account credentials
type Authenticator interface {
	Authenticate(ctx context.Context, email string, password string) (*store.Account, error)
}

// CredentialCache remembers successful logins for a short time so repeated
// requests of one client skip the password hash. Failed logins are never cached.
// Entries are keyed by an HMAC of the credentials under a per-process random key.
type CredentialCache struct {
	next     Authenticator
	macKey   []byte
	accounts *expirable.LRU[string, store.Account]
}

// NewCredentialCache wraps next. A non-positive size or ttl disables caching.
func NewCredentialCache(next Authenticator, size int, ttl time.Duration) (*CredentialCache, error) {
	c := &CredentialCache{next: next}
	if size <= 0 || ttl <= 0 {
		return c, nil
	}

	c.macKey = make([]byte, cacheKeySize)
	if _, err := rand.Read(c.macKey); err != nil {
		return nil, errors.Wrap(err, "failed to create credential cache key")
	}
	c.accounts = expirable.NewLRU[string, store.Account](size, nil, ttl)

	return c, nil
}

func (c *CredentialCache) Authenticate(ctx context.Context, email string, password string) (*store.Account, error) {
	if c.accounts == nil {
		return c.next.Authenticate(ctx, email, password)
	}

	k := c.cacheKey(email, password)
	if account, ok := c.accounts.Get(k); ok {
		return &account, nil
	}

	account, err := c.next.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}
	c.accounts.Add(k, *account)

	return account, nil
}

// Len returns the number of cached logins
func (c *CredentialCache) Len() int {
	if c.accounts == nil {
		return 0
	}
	return c.accounts.Len()
}

func (c *CredentialCache) cacheKey(email string, password string) string {
	mac := hmac.New(sha256.New, c.macKey)
	mac.Write([]byte(email))
	mac.Write([]byte{0})
	mac.Write([]byte(password))
	return string(mac.Sum(nil))
}
