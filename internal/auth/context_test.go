package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github/hdforge/go-wallet/internal/auth"
	"github/hdforge/go-wallet/internal/store"
)

func TestUserFromContext(t *testing.T) {
	ctx := context.Background()
	assert.Nil(t, auth.UserFromContext(ctx))

	user := &store.Account{ID: "a", Email: "a@example.com"}
	assert.Same(t, user, auth.UserFromContext(auth.WithUser(ctx, user)))
}
