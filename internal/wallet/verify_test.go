package wallet_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/hdforge/go-wallet/internal/wallet"
	"github/hdforge/go-wallet/internal/wallet/keystore"
	"github/hdforge/go-wallet/internal/wallet/seed"
)

func newTestKeystore(t *testing.T, path string) keystore.Service {
	t.Helper()

	ks, err := keystore.NewService(path, keystore.LightScryptParams())
	require.NoError(t, err)
	return ks
}

func TestVerificationAddress(t *testing.T) {
	addr, err := wallet.VerificationAddress(referenceMnemonic)
	require.NoError(t, err)
	assert.Equal(t, ethAddress0, addr)

	_, err = wallet.VerificationAddress("abandon abandon")
	require.ErrorIs(t, err, seed.ErrInvalidMnemonic)
}

func TestBackupRoundTrip(t *testing.T) {
	ctx := t.Context()
	ks := newTestKeystore(t, filepath.Join(t.TempDir(), "backup.json"))

	created, err := wallet.CreateBackup(ctx, ks, referenceMnemonic, "correct horse battery")
	require.NoError(t, err)
	assert.Equal(t, ethAddress0, created.Address)

	phrase, err := wallet.VerifyBackup(ctx, ks, "correct horse battery")
	require.NoError(t, err)
	assert.Equal(t, referenceMnemonic, phrase)
}

func TestVerifyBackupWrongPassword(t *testing.T) {
	ctx := t.Context()
	ks := newTestKeystore(t, filepath.Join(t.TempDir(), "backup.json"))

	_, err := wallet.CreateBackup(ctx, ks, referenceMnemonic, "correct horse battery")
	require.NoError(t, err)

	_, err = wallet.VerifyBackup(ctx, ks, "wrong password")
	require.ErrorIs(t, err, keystore.ErrInvalidPassword)
}

func TestVerifyBackupAddressMismatch(t *testing.T) {
	ctx := t.Context()
	dir := t.TempDir()
	original := filepath.Join(dir, "backup.json")
	tampered := filepath.Join(dir, "tampered.json")

	_, err := wallet.CreateBackup(ctx, newTestKeystore(t, original), referenceMnemonic, "pw")
	require.NoError(t, err)

	ksJSON, err := keystore.Load(original)
	require.NoError(t, err)
	ksJSON.Address = "0x0000000000000000000000000000000000000001"
	require.NoError(t, keystore.Save(tampered, ksJSON))

	_, err = wallet.VerifyBackup(ctx, newTestKeystore(t, tampered), "pw")
	require.ErrorIs(t, err, wallet.ErrVerificationFailed)
}

func TestCreateBackupExisting(t *testing.T) {
	ctx := t.Context()
	ks := newTestKeystore(t, filepath.Join(t.TempDir(), "backup.json"))

	_, err := wallet.CreateBackup(ctx, ks, referenceMnemonic, "pw")
	require.NoError(t, err)

	_, err = wallet.CreateBackup(ctx, ks, otherMnemonic, "pw")
	require.ErrorIs(t, err, keystore.ErrKeystoreExists)
}

func TestVerifyBackupMissing(t *testing.T) {
	ks := newTestKeystore(t, filepath.Join(t.TempDir(), "missing.json"))

	_, err := wallet.VerifyBackup(t.Context(), ks, "pw")
	require.ErrorIs(t, err, keystore.ErrKeystoreNotFound)
}
