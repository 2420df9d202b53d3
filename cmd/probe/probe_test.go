package probe

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/hdforge/go-wallet/internal/config"
)

func TestProbeURL(t *testing.T) {
	cfg := config.Server{}
	cfg.Echo.ListenAddress = ":8080"
	assert.Equal(t, "http://127.0.0.1:8080/-/ready", probeURL(cfg, "/-/ready"))

	cfg.Echo.ListenAddress = "0.0.0.0:9000"
	cfg.Management.Secret = "s3cret"
	assert.Equal(t, "http://0.0.0.0:9000/-/healthy?mgmt-secret=s3cret", probeURL(cfg, "/-/healthy"))
}

func TestRunProbe(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/-/ready" {
			_, _ = w.Write([]byte("Ready."))
			return
		}
		w.WriteHeader(521)
		_, _ = w.Write([]byte("Not healthy."))
	}))
	defer srv.Close()

	cfg := config.Server{}
	cfg.Echo.ListenAddress = strings.TrimPrefix(srv.URL, "http://")

	var out bytes.Buffer
	require.NoError(t, runProbe(t.Context(), &out, cfg, "/-/ready", true))
	assert.Equal(t, "/-/ready: 200 Ready.\n", out.String())

	out.Reset()
	err := runProbe(t.Context(), &out, cfg, "/-/healthy", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 521")
	assert.Empty(t, out.String())
}
