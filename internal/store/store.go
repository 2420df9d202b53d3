package store

import (
	"context"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/dropbox/godropbox/time2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github/hdforge/go-wallet/internal/config"
)

var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAccountExists is returned when registering an email twice.
	ErrAccountExists = errors.New("account already exists")

	// ErrInvalidCredentials is returned when email and password do not match an account.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrClosed is returned when using a closed store.
	ErrClosed = errors.New("store is closed")
)

// Store persists accounts and saved wallets in Badger
type Store struct {
	db    *badger.DB
	clock time2.Clock
}

// Open opens the Badger database described by cfg
func Open(cfg config.StoreServer, clock time2.Clock) (*Store, error) {
	opts := badger.DefaultOptions(cfg.Path)
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	}
	opts.Logger = nil // Disable badger's built-in logging.

	db, err := badger.Open(opts)
	if err != nil {
		errMsg := err.Error()
		if strings.Contains(errMsg, "Cannot acquire directory lock") ||
			strings.Contains(errMsg, "resource temporarily unavailable") {
			return nil, errors.Wrapf(err, "store at %s is locked by another process (is another server running?)", cfg.Path)
		}
		return nil, errors.Wrapf(err, "failed to open store at %s", cfg.Path)
	}

	log.Debug().Str("path", cfg.Path).Bool("in_memory", cfg.InMemory).Msg("Store opened")

	return &Store{db: db, clock: clock}, nil
}

// Ping reports whether the store is usable
func (s *Store) Ping(_ context.Context) error {
	if s.db.IsClosed() {
		return ErrClosed
	}
	return nil
}

// Close closes the database
func (s *Store) Close() error {
	if s.db.IsClosed() {
		return nil
	}
	return s.db.Close()
}

func (s *Store) view(fn func(txn *badger.Txn) error) error {
	if s.db.IsClosed() {
		return ErrClosed
	}
	return s.db.View(fn)
}

func (s *Store) update(fn func(txn *badger.Txn) error) error {
	if s.db.IsClosed() {
		return ErrClosed
	}
	return s.db.Update(fn)
}

func key(parts ...string) []byte {
	return []byte(strings.Join(parts, "/"))
}

func prefix(parts ...string) []byte {
	return []byte(strings.Join(parts, "/") + "/")
}
