package auth_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/hdforge/go-wallet/internal/api"
	"github/hdforge/go-wallet/internal/api/httperrors"
	"github/hdforge/go-wallet/internal/test"
	"github/hdforge/go-wallet/internal/types"
)

func TestPostRegister(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		payload := test.GenericPayload{
			"email":    "User@Example.com",
			"password": test.DefaultPassword,
		}

		res := test.PerformRequest(t, s, "POST", "/api/v1/auth/register", payload, nil)
		require.Equal(t, http.StatusCreated, res.Result().StatusCode)

		var response types.Account
		test.ParseResponseAndValidate(t, res, &response)
		assert.Equal(t, "user@example.com", response.Email.String())
		assert.Equal(t, "2024-01-01T12:00:00.000Z", response.CreatedAt.String())

		// the new account can use the session endpoints right away
		res = test.PerformRequest(t, s, "GET", "/api/v1/session", nil, test.BasicAuthHeaders("user@example.com", test.DefaultPassword))
		require.Equal(t, http.StatusOK, res.Result().StatusCode)
	})
}

func TestPostRegisterAlreadyExists(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		test.CreateAccount(t, s, "user@example.com")

		payload := test.GenericPayload{
			"email":    "USER@example.com",
			"password": "another password",
		}

		res := test.PerformRequest(t, s, "POST", "/api/v1/auth/register", payload, nil)
		test.RequireHTTPError(t, res, httperrors.ErrConflictAccountExists)
	})
}

func TestPostRegisterInvalidPayload(t *testing.T) {
	tests := []struct {
		name    string
		payload test.GenericPayload
	}{
		{name: "missing email", payload: test.GenericPayload{"password": test.DefaultPassword}},
		{name: "invalid email", payload: test.GenericPayload{"email": "not-an-email", "password": test.DefaultPassword}},
		{name: "short password", payload: test.GenericPayload{"email": "user@example.com", "password": "short"}},
	}

	test.WithTestServer(t, func(s *api.Server) {
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				res := test.PerformRequest(t, s, "POST", "/api/v1/auth/register", tt.payload, nil)
				require.Equal(t, http.StatusBadRequest, res.Result().StatusCode)

				var response types.PublicHTTPValidationError
				test.ParseResponseAndValidate(t, res, &response)
				assert.NotEmpty(t, response.ValidationErrors)
			})
		}
	})
}
