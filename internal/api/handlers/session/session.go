package session

import (
	"github.com/labstack/echo/v4"
	"github/hdforge/go-wallet/internal/auth"
	"github/hdforge/go-wallet/internal/wallet"
)

// userSession returns the derivation session of the authenticated user
func userSession(c echo.Context, sessions *wallet.Sessions) (*wallet.Session, error) {
	user := auth.UserFromContext(c.Request().Context())
	if user == nil {
		return nil, echo.ErrUnauthorized
	}

	return sessions.Get(user.ID), nil
}
