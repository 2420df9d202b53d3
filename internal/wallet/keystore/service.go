package keystore

import (
	"context"
	"os"

	"github.com/pkg/errors"
	"github/hdforge/go-wallet/internal/util"
)

// Service manages the single mnemonic backup file of an installation
type Service interface {
	// CreateKeystore seals mnemonic with password, tags it with verificationAddress and writes it once
	CreateKeystore(ctx context.Context, mnemonic string, password string, verificationAddress string) (*Keystore, error)
	DecryptMnemonic(ctx context.Context, keystore *Keystore, password string) (string, error)
	GetKeystore(ctx context.Context) (*Keystore, error)
	Exists(ctx context.Context) (bool, error)
}

type service struct {
	path   string
	params *ScryptParams
}

// NewService returns a Service for the backup at path, nil params selects DefaultScryptParams
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewService(path string, params *ScryptParams) (Service, error) {
	if path == "" {
		return nil, errors.New("keystore path is required")
	}

	if params == nil {
		params = DefaultScryptParams()
	}

	return &service{
		path:   path,
		params: params,
	}, nil
}

func (s *service) CreateKeystore(ctx context.Context, mnemonic string, password string, verificationAddress string) (*Keystore, error) {
	log := util.LogFromContext(ctx).With().Str("path", s.path).Logger()

	// scrypt is slow, fail early when the file is already there. Save still refuses to overwrite.
	if exists, err := s.Exists(ctx); err != nil {
		return nil, err
	} else if exists {
		return nil, ErrKeystoreExists
	}

	doc, err := Encrypt(mnemonic, password, s.params)
	if err != nil {
		log.Error().Err(err).Msg("Failed to seal mnemonic")
		return nil, errors.Wrap(err, "failed to encrypt mnemonic")
	}
	doc.Address = verificationAddress

	if err := Save(s.path, doc); err != nil {
		log.Error().Err(err).Msg("Failed to write keystore")
		return nil, err
	}

	log.Info().Str("address", verificationAddress).Msg("Mnemonic backup written")

	return &Keystore{Path: s.path, KeystoreJSON: *doc}, nil
}

func (s *service) DecryptMnemonic(ctx context.Context, ks *Keystore, password string) (string, error) {
	phrase, err := Decrypt(&ks.KeystoreJSON, password)
	if err != nil {
		util.LogFromContext(ctx).Debug().Err(err).Str("path", ks.Path).Msg("Failed to open keystore")
		return "", errors.Wrap(err, "failed to decrypt mnemonic")
	}

	return phrase, nil
}

func (s *service) GetKeystore(_ context.Context) (*Keystore, error) {
	doc, err := Load(s.path)
	if err != nil {
		return nil, err
	}

	return &Keystore{Path: s.path, KeystoreJSON: *doc}, nil
}

func (s *service) Exists(_ context.Context) (bool, error) {
	switch _, err := os.Stat(s.path); {
	case err == nil:
		return true, nil
	case errors.Is(err, os.ErrNotExist):
		return false, nil
	default:
		return false, errors.Wrap(err, "failed to stat keystore file")
	}
}
