package common_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"github/hdforge/go-wallet/internal/api"
	"github/hdforge/go-wallet/internal/test"
)

func TestGetReadyReadiness(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "GET", "/-/ready", nil, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)
		require.Equal(t, "Ready.", res.Body.String())
	})
}

func TestGetReadyReadinessBroken(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		// forcefully remove an initialized component to check if ready state works
		s.Notifier = nil

		res := test.PerformRequest(t, s, "GET", "/-/ready", nil, nil)
		require.Equal(t, 521, res.Result().StatusCode)
		require.Equal(t, "Not ready.", res.Body.String())
	})
}

func TestGetReadyStoreClosedNotReady(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		// forcefully close the store
		err := s.Store.Close()
		require.NoError(t, err)

		res := test.PerformRequest(t, s, "GET", "/-/ready", nil, nil)
		require.Equal(t, 521, res.Result().StatusCode)
		require.Equal(t, "Not ready.", res.Body.String())

		res = test.PerformRequest(t, s, "GET", "/-/healthy", nil, nil)
		require.Equal(t, 521, res.Result().StatusCode)
		require.Equal(t, "Not healthy.", res.Body.String())
	})
}

func TestGetHealthy(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "GET", "/-/healthy", nil, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)
		require.Equal(t, "Healthy.", res.Body.String())
	})
}

func TestManagementSecret(t *testing.T) {
	cfg := test.Config(t)
	cfg.Management.Secret = "mgmt"

	test.WithTestServerConfigurable(t, cfg, func(s *api.Server) {
		res := test.PerformRequest(t, s, "GET", "/-/ready", nil, nil)
		require.NotEqual(t, http.StatusOK, res.Result().StatusCode)

		res = test.PerformRequest(t, s, "GET", "/-/ready?mgmt-secret=wrong", nil, nil)
		require.Equal(t, http.StatusUnauthorized, res.Result().StatusCode)

		res = test.PerformRequest(t, s, "GET", "/-/ready?mgmt-secret=mgmt", nil, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)
	})
}
