package store

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/json"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github/hdforge/go-wallet/internal/util"
	"golang.org/x/crypto/argon2"
)

// Argon2id parameters for password hashing
const (
	saltSize         = 16
	argonTime        = 1
	argonMemory      = 64 * 1024
	argonParallelism = 4
	argonKeyLength   = 32
	accountKeyPrefix = "account"
	emailIndexPrefix = "email"
)

// Account is a registered user
type Account struct {
	ID        string
	Email     string
	CreatedAt time.Time
}

type accountEntry struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Salt         []byte    `json:"salt"`
	PasswordHash []byte    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}

func (e *accountEntry) account() *Account {
	return &Account{
		ID:        e.ID,
		Email:     e.Email,
		CreatedAt: e.CreatedAt,
	}
}

// CreateAccount registers a new account. Emails are compared case-insensitively.
func (s *Store) CreateAccount(ctx context.Context, email string, password string) (*Account, error) {
	log := util.LogFromContext(ctx)
	email = normalizeEmail(email)

	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, errors.Wrap(err, "failed to generate salt")
	}

	entry := &accountEntry{
		ID:           uuid.New().String(),
		Email:        email,
		Salt:         salt,
		PasswordHash: hashPassword(password, salt),
		CreatedAt:    s.clock.Now().UTC(),
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal account")
	}

	err = s.update(func(txn *badger.Txn) error {
		_, err := txn.Get(key(emailIndexPrefix, email))
		if err == nil {
			return ErrAccountExists
		}
		if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}

		if err := txn.Set(key(emailIndexPrefix, email), []byte(entry.ID)); err != nil {
			return err
		}
		return txn.Set(key(accountKeyPrefix, entry.ID), data)
	})
	if err != nil {
		if errors.Is(err, ErrAccountExists) || errors.Is(err, badger.ErrConflict) {
			return nil, ErrAccountExists
		}
		return nil, errors.Wrap(err, "failed to create account")
	}

	log.Info().Str("account_id", entry.ID).Msg("Account created")

	return entry.account(), nil
}

// Authenticate checks email and password, returning ErrInvalidCredentials on mismatch
func (s *Store) Authenticate(ctx context.Context, email string, password string) (*Account, error) {
	var entry *accountEntry

	err := s.view(func(txn *badger.Txn) error {
		item, err := txn.Get(key(emailIndexPrefix, normalizeEmail(email)))
		if err != nil {
			return err
		}

		id, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}

		entry, err = getAccountEntry(txn, string(id))
		return err
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			// burn the same time as a real comparison
			hashPassword(password, make([]byte, saltSize))
			return nil, ErrInvalidCredentials
		}
		return nil, errors.Wrap(err, "failed to load account")
	}

	if subtle.ConstantTimeCompare(hashPassword(password, entry.Salt), entry.PasswordHash) != 1 {
		util.LogFromContext(ctx).Debug().Str("account_id", entry.ID).Msg("Password mismatch")
		return nil, ErrInvalidCredentials
	}

	return entry.account(), nil
}

// GetAccount loads an account by id
func (s *Store) GetAccount(_ context.Context, id string) (*Account, error) {
	var entry *accountEntry

	err := s.view(func(txn *badger.Txn) error {
		var err error
		entry, err = getAccountEntry(txn, id)
		return err
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, errors.Wrapf(ErrNotFound, "account %s", id)
		}
		return nil, errors.Wrap(err, "failed to load account")
	}

	return entry.account(), nil
}

func getAccountEntry(txn *badger.Txn, id string) (*accountEntry, error) {
	item, err := txn.Get(key(accountKeyPrefix, id))
	if err != nil {
		return nil, err
	}

	var entry accountEntry
	err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, &entry)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal account")
	}

	return &entry, nil
}

func hashPassword(password string, salt []byte) []byte {
	return argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonParallelism, argonKeyLength)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
