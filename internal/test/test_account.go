package test

import (
	"context"
	"net/http"
	"testing"

	"github/hdforge/go-wallet/internal/api"
	"github/hdforge/go-wallet/internal/store"
)

const (
	DefaultPassword = "correct horse battery"
)

// TestAccount is a registered account plus ready-to-use credentials
type TestAccount struct {
	*store.Account
	Password string
	Headers  http.Header
}

// CreateAccount registers email with DefaultPassword directly in the store of s
func CreateAccount(t *testing.T, s *api.Server, email string) *TestAccount {
	t.Helper()

	account, err := s.Store.CreateAccount(context.Background(), email, DefaultPassword)
	if err != nil {
		t.Fatalf("Failed to create test account %q: %v", email, err)
	}

	return &TestAccount{
		Account:  account,
		Password: DefaultPassword,
		Headers:  BasicAuthHeaders(email, DefaultPassword),
	}
}
