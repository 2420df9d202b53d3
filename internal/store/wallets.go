package store

import (
	"context"
	"encoding/json"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github/hdforge/go-wallet/internal/util"
	"github/hdforge/go-wallet/internal/wallet"
	"github/hdforge/go-wallet/internal/wallet/address"
	"github/hdforge/go-wallet/internal/wallet/chain"
)

const (
	walletKeyPrefix  = "wallet"
	localIDKeyPrefix = "localid"
	saveAttempts     = 3
)

// WalletRecord is a derived wallet saved by a user
type WalletRecord struct {
	ID            string
	UserID        string
	LocalID       string
	Chain         chain.Chain
	AccountIndex  uint32
	Path          string
	PublicAddress string
	PrivateKey    address.Secret
	CreatedAt     time.Time
}

// walletEntry is the stored form of a WalletRecord. address.Secret redacts itself
// when marshaled, so the key material is carried as a plain string here.
type walletEntry struct {
	ID            string      `json:"id"`
	UserID        string      `json:"user_id"`
	LocalID       string      `json:"local_id"`
	Chain         chain.Chain `json:"chain"`
	AccountIndex  uint32      `json:"account_index"`
	Path          string      `json:"path"`
	PublicAddress string      `json:"public_address"`
	PrivateKey    string      `json:"private_key"`
	CreatedAt     time.Time   `json:"created_at"`
}

func (e *walletEntry) record() *WalletRecord {
	return &WalletRecord{
		ID:            e.ID,
		UserID:        e.UserID,
		LocalID:       e.LocalID,
		Chain:         e.Chain,
		AccountIndex:  e.AccountIndex,
		Path:          e.Path,
		PublicAddress: e.PublicAddress,
		PrivateKey:    address.NewSecret(e.PrivateKey),
		CreatedAt:     e.CreatedAt,
	}
}

// SaveWallet stores a copy of w for userID.
// Saving the same wallet again returns the existing record. LocalIDs only carry the
// address suffix, so a LocalID shared by two different addresses yields two records.
func (s *Store) SaveWallet(ctx context.Context, userID string, w *wallet.DerivedWallet) (*WalletRecord, error) {
	log := util.LogFromContext(ctx).With().Str("user_id", userID).Str("local_id", w.LocalID).Logger()

	entry := &walletEntry{
		ID:            uuid.New().String(),
		UserID:        userID,
		LocalID:       w.LocalID,
		Chain:         w.Chain,
		AccountIndex:  w.AccountIndex,
		Path:          w.Path,
		PublicAddress: w.PublicAddress,
		PrivateKey:    w.PrivateKey.Reveal(),
		CreatedAt:     s.clock.Now().UTC(),
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal wallet")
	}

	var existing *walletEntry
	for attempt := 1; ; attempt++ {
		existing = nil
		err = s.update(func(txn *badger.Txn) error {
			item, err := txn.Get(localIDKey(userID, w.LocalID, w.PublicAddress))
			if err == nil {
				id, err := item.ValueCopy(nil)
				if err != nil {
					return err
				}
				existing, err = getWalletEntry(txn, userID, string(id))
				return err
			}
			if !errors.Is(err, badger.ErrKeyNotFound) {
				return err
			}

			if err := txn.Set(localIDKey(userID, w.LocalID, w.PublicAddress), []byte(entry.ID)); err != nil {
				return err
			}
			return txn.Set(key(walletKeyPrefix, userID, entry.ID), data)
		})

		if errors.Is(err, badger.ErrConflict) && attempt < saveAttempts {
			log.Debug().Int("attempt", attempt).Msg("Conflict while saving wallet, retrying")
			continue
		}
		break
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to save wallet")
	}

	if existing != nil {
		log.Debug().Str("wallet_id", existing.ID).Msg("Wallet already saved")
		return existing.record(), nil
	}

	log.Info().Str("wallet_id", entry.ID).Msg("Wallet saved")

	return entry.record(), nil
}

// ListWallets returns the saved wallets of userID ordered by creation time
func (s *Store) ListWallets(_ context.Context, userID string) ([]*WalletRecord, error) {
	records := make([]*WalletRecord, 0)

	err := s.view(func(txn *badger.Txn) error {
		p := prefix(walletKeyPrefix, userID)
		opts := badger.DefaultIteratorOptions
		opts.Prefix = p
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(p); it.ValidForPrefix(p); it.Next() {
			var entry walletEntry
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &entry)
			})
			if err != nil {
				return errors.Wrap(err, "failed to unmarshal wallet")
			}
			records = append(records, entry.record())
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list wallets")
	}

	slices.SortStableFunc(records, func(a, b *WalletRecord) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		if a.AccountIndex != b.AccountIndex {
			if a.AccountIndex < b.AccountIndex {
				return -1
			}
			return 1
		}
		return 0
	})

	return records, nil
}

// GetWallet loads one saved wallet of userID
func (s *Store) GetWallet(_ context.Context, userID string, id string) (*WalletRecord, error) {
	var entry *walletEntry

	err := s.view(func(txn *badger.Txn) error {
		var err error
		entry, err = getWalletEntry(txn, userID, id)
		return err
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, errors.Wrapf(ErrNotFound, "wallet %s", id)
		}
		return nil, errors.Wrap(err, "failed to load wallet")
	}

	return entry.record(), nil
}

// DeleteWallet removes a saved wallet of userID
func (s *Store) DeleteWallet(ctx context.Context, userID string, id string) error {
	err := s.update(func(txn *badger.Txn) error {
		entry, err := getWalletEntry(txn, userID, id)
		if err != nil {
			return err
		}

		if err := txn.Delete(localIDKey(userID, entry.LocalID, entry.PublicAddress)); err != nil {
			return err
		}
		return txn.Delete(key(walletKeyPrefix, userID, id))
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return errors.Wrapf(ErrNotFound, "wallet %s", id)
		}
		return errors.Wrap(err, "failed to delete wallet")
	}

	util.LogFromContext(ctx).Info().Str("user_id", userID).Str("wallet_id", id).Msg("Wallet deleted")

	return nil
}

func getWalletEntry(txn *badger.Txn, userID string, id string) (*walletEntry, error) {
	item, err := txn.Get(key(walletKeyPrefix, userID, id))
	if err != nil {
		return nil, err
	}

	var entry walletEntry
	err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, &entry)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal wallet")
	}

	return &entry, nil
}

func localIDKey(userID string, localID string, publicAddress string) []byte {
	return key(localIDKeyPrefix, userID, localID, publicAddress)
}
