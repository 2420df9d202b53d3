package auth

import (
	"context"

	"github/hdforge/go-wallet/internal/store"
	"github/hdforge/go-wallet/internal/util"
)

// UserFromContext returns the authenticated account of the request, or nil
func UserFromContext(ctx context.Context) *store.Account {
	user, ok := ctx.Value(util.CTXKeyUser).(*store.Account)
	if !ok {
		return nil
	}

	return user
}

// WithUser attaches the authenticated account to ctx
func WithUser(ctx context.Context, user *store.Account) context.Context {
	return context.WithValue(ctx, util.CTXKeyUser, user)
}
