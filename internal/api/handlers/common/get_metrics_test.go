package common_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/hdforge/go-wallet/internal/api"
	"github/hdforge/go-wallet/internal/test"
)

func TestGetMetrics(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		user := test.CreateAccount(t, s, "user@example.com")

		res := test.PerformRequest(t, s, "POST", "/api/v1/session/generate", test.GenericPayload{"chain": "sol"}, user.Headers)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		res = test.PerformRequest(t, s, "GET", "/-/metrics", nil, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		body := res.Body.String()
		assert.Contains(t, body, `hdforge_sessions_generated_total{chain="sol"} 1`)
		assert.Contains(t, body, `hdforge_wallets_derived_total{chain="sol"} 1`)
		assert.Contains(t, body, "go_goroutines")
	})
}
