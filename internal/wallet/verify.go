package wallet

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github/hdforge/go-wallet/internal/wallet/address"
	"github/hdforge/go-wallet/internal/wallet/chain"
	"github/hdforge/go-wallet/internal/wallet/keystore"
	"github/hdforge/go-wallet/internal/wallet/seed"
)

const (
	// VerificationAddressIndex is the account index used for password verification
	VerificationAddressIndex = 0
)

// ErrVerificationFailed is returned when a decrypted backup derives a different verification address.
var ErrVerificationFailed = errors.New("backup verification failed: derived address does not match stored verification address")

// VerificationAddress derives the Ethereum address of account 0 for phrase
func VerificationAddress(phrase string) (string, error) {
	seedBytes, err := seed.ToSeed(phrase, "")
	if err != nil {
		return "", err
	}
	defer seed.Zero(seedBytes)

	path := chain.PathFor(chain.Ethereum, VerificationAddressIndex)
	keyPair, err := address.DeriveKey(seedBytes, chain.Ethereum, path)
	if err != nil {
		return "", errors.Wrap(err, "failed to derive verification address")
	}
	keyPair.PrivateKey.Zero()

	return keyPair.PublicAddress, nil
}

// CreateBackup encrypts phrase into the keystore together with its verification address
func CreateBackup(ctx context.Context, keystoreService keystore.Service, phrase string, password string) (*keystore.Keystore, error) {
	log := log.With().Str("component", "backup").Logger()

	verificationAddress, err := VerificationAddress(phrase)
	if err != nil {
		return nil, err
	}

	ks, err := keystoreService.CreateKeystore(ctx, phrase, password, verificationAddress)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create keystore")
	}

	log.Info().
		Str("address", verificationAddress).
		Int("index", VerificationAddressIndex).
		Msg("Backup created")

	return ks, nil
}

// VerifyBackup decrypts the keystore and checks the phrase against the stored verification address.
// The decrypted phrase is returned on success.
func VerifyBackup(ctx context.Context, keystoreService keystore.Service, password string) (string, error) {
	log := log.With().Str("component", "backup").Logger()

	ks, err := keystoreService.GetKeystore(ctx)
	if err != nil {
		return "", errors.Wrap(err, "failed to get keystore")
	}

	phrase, err := keystoreService.DecryptMnemonic(ctx, ks, password)
	if err != nil {
		return "", err
	}

	derivedAddress, err := VerificationAddress(phrase)
	if err != nil {
		return "", err
	}

	if ks.Address != "" && derivedAddress != ks.Address {
		log.Warn().
			Str("derived", derivedAddress).
			Str("stored", ks.Address).
			Msg("Backup verification failed: addresses do not match")
		return "", ErrVerificationFailed
	}

	log.Info().Str("address", derivedAddress).Msg("Backup verification successful")

	return phrase, nil
}
