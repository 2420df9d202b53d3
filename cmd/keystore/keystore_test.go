package keystore

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/hdforge/go-wallet/internal/config"
	"github/hdforge/go-wallet/internal/wallet"
	"github/hdforge/go-wallet/internal/wallet/keystore"
)

//nolint:dupword // BIP39 reference vector
const referenceMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

func password(p string) func(string, bool) (string, error) {
	return func(string, bool) (string, error) {
		return p, nil
	}
}

func writeBackup(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "keystore.json")
	service, err := keystore.NewService(path, keystore.LightScryptParams())
	require.NoError(t, err)

	_, err = wallet.CreateBackup(t.Context(), service, referenceMnemonic, "backup password")
	require.NoError(t, err)

	return path
}

func TestRunVerify(t *testing.T) {
	path := writeBackup(t)

	var out bytes.Buffer
	err := runVerify(t.Context(), &out, config.Server{}, path, false, password("backup password"))
	require.NoError(t, err)
	assert.Equal(t, "Backup OK, verification address 0x9858EfFD232B4033E47d90003D41EC34EcaEda94\n", out.String())

	out.Reset()
	err = runVerify(t.Context(), &out, config.Server{}, path, true, password("backup password"))
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Mnemonic: "+referenceMnemonic)
}

func TestRunVerifyWrongPassword(t *testing.T) {
	path := writeBackup(t)

	var out bytes.Buffer
	err := runVerify(t.Context(), &out, config.Server{}, path, true, password("wrong password"))
	require.ErrorIs(t, err, keystore.ErrInvalidPassword)
	assert.Empty(t, out.String())
}

func TestRunVerifyMissingFile(t *testing.T) {
	var out bytes.Buffer
	err := runVerify(t.Context(), &out, config.Server{}, filepath.Join(t.TempDir(), "missing.json"), false, password("x"))
	require.ErrorIs(t, err, keystore.ErrKeystoreNotFound)
}
