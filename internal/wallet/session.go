package wallet

import (
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github/hdforge/go-wallet/internal/wallet/address"
	"github/hdforge/go-wallet/internal/wallet/chain"
	"github/hdforge/go-wallet/internal/wallet/mnemonic"
	"github/hdforge/go-wallet/internal/wallet/seed"
)

var (
	// ErrNoMnemonic is returned by AddNext and SwitchChain before GenerateNew.
	ErrNoMnemonic = errors.New("no mnemonic: generate a mnemonic first")

	// ErrWalletNotFound is returned when no session wallet has the requested local id.
	ErrWalletNotFound = errors.New("wallet not found in session")

	// ErrWalletLimit is returned by AddNext when the session holds the maximum number of wallets.
	ErrWalletLimit = errors.New("session wallet limit reached")
)

// State is the lifecycle state of a Session
type State int

const (
	// StateEmpty means no mnemonic has been generated
	StateEmpty State = iota
	// StateActive means a mnemonic is held and at least one wallet is derived
	StateActive
)

func (s State) String() string {
	if s == StateActive {
		return "active"
	}
	return "empty"
}

// Snapshot is a consistent copy of a Session. Mnemonic is empty while the session is empty.
type Snapshot struct {
	State    State
	Chain    chain.Chain
	Mnemonic string
	Wallets  []*DerivedWallet
}

// Session derives wallets from a single mnemonic.
// GenerateNew, AddNext, SwitchChain and Reset are its only mutators and are mutually exclusive.
// Wallets returned by a Session are copies; the Session keeps exclusive ownership of its own.
type Session struct {
	mu sync.Mutex

	generator  mnemonic.Generator
	deriver    address.Service
	maxWallets int
	log        zerolog.Logger

	phrase  []byte
	seeds   *seed.Manager
	chain   chain.Chain
	wallets []*DerivedWallet
}

// Option configures a Session
type Option func(*Session)

// WithGenerator replaces the mnemonic generator
func WithGenerator(g mnemonic.Generator) Option {
	return func(s *Session) {
		s.generator = g
	}
}

// WithDeriver replaces the key deriver
func WithDeriver(d address.Service) Option {
	return func(s *Session) {
		s.deriver = d
	}
}

// WithMaxWallets caps the number of wallets AddNext may grow the session to (0 = unlimited)
func WithMaxWallets(n int) Option {
	return func(s *Session) {
		s.maxWallets = n
	}
}

// WithLogger sets the session logger
func WithLogger(l zerolog.Logger) Option {
	return func(s *Session) {
		s.log = l
	}
}

// NewSession creates an empty session with selected chain c
func NewSession(c chain.Chain, opts ...Option) *Session {
	s := &Session{
		generator: mnemonic.NewGenerator(nil),
		deriver:   address.NewService(),
		log:       log.With().Str("component", "derivation_session").Logger(),
		chain:     c,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// GenerateNew discards any previous mnemonic and wallets, generates a new mnemonic
// and derives account index 0 for chain c.
// On error the previous state is kept.
func (s *Session) GenerateNew(c chain.Chain) (string, []*DerivedWallet, error) {
	if !c.Valid() {
		return "", nil, errors.Wrapf(chain.ErrUnknownChain, "%d", int(c))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	phrase, err := s.generator.Generate()
	if err != nil {
		s.log.Error().Err(err).Msg("Failed to generate mnemonic")
		return "", nil, errors.Wrap(err, "failed to generate mnemonic")
	}

	seeds := seed.NewManager()
	if err := seeds.Initialize(phrase, ""); err != nil {
		return "", nil, errors.Wrap(err, "failed to initialize seed manager")
	}

	wallets, err := s.deriveRange(seeds, c, 0, 1)
	if err != nil {
		seeds.Clear()
		return "", nil, err
	}

	s.wipe()
	s.phrase = []byte(phrase)
	s.seeds = seeds
	s.chain = c
	s.wallets = wallets

	s.log.Info().
		Str("chain", c.String()).
		Msg("Generated new mnemonic")

	return phrase, cloneWallets(s.wallets), nil
}

// AddNext derives the next contiguous account index for the current chain and
// returns the full updated wallet sequence.
func (s *Session) AddNext() ([]*DerivedWallet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.addNext(); err != nil {
		return nil, err
	}

	return cloneWallets(s.wallets), nil
}

// AddNextSnapshot is AddNext returning the session state it produced
func (s *Session) AddNextSnapshot() (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.addNext(); err != nil {
		return nil, err
	}

	return s.snapshot(), nil
}

func (s *Session) addNext() error {
	if s.state() == StateEmpty {
		return ErrNoMnemonic
	}

	if s.maxWallets > 0 && len(s.wallets) >= s.maxWallets {
		return errors.Wrapf(ErrWalletLimit, "max %d", s.maxWallets)
	}

	next, err := s.deriveRange(s.seeds, s.chain, len(s.wallets), 1)
	if err != nil {
		return err
	}

	s.wallets = append(s.wallets, next...)

	s.log.Debug().
		Str("chain", s.chain.String()).
		Int("count", len(s.wallets)).
		Msg("Added wallet")

	return nil
}

// SwitchChain re-derives every held account index under chain c and replaces the
// wallet sequence. Switching to the current chain re-derives identical wallets.
func (s *Session) SwitchChain(c chain.Chain) ([]*DerivedWallet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.switchChain(c); err != nil {
		return nil, err
	}

	return cloneWallets(s.wallets), nil
}

// SwitchChainSnapshot is SwitchChain returning the session state it produced
func (s *Session) SwitchChainSnapshot(c chain.Chain) (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.switchChain(c); err != nil {
		return nil, err
	}

	return s.snapshot(), nil
}

func (s *Session) switchChain(c chain.Chain) error {
	if s.state() == StateEmpty {
		return ErrNoMnemonic
	}

	if !c.Valid() {
		return errors.Wrapf(chain.ErrUnknownChain, "%d", int(c))
	}

	wallets, err := s.deriveRange(s.seeds, c, 0, len(s.wallets))
	if err != nil {
		return err
	}

	zeroWallets(s.wallets)
	s.wallets = wallets
	s.chain = c

	s.log.Info().
		Str("chain", c.String()).
		Int("count", len(s.wallets)).
		Msg("Switched chain")

	return nil
}

// Reset discards the mnemonic and all derived wallets
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.wipe()
}

// Snapshot returns state, chain, mnemonic and wallets read together
func (s *Session) Snapshot() *Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshot()
}

func (s *Session) snapshot() *Snapshot {
	snap := &Snapshot{
		State:   s.state(),
		Chain:   s.chain,
		Wallets: cloneWallets(s.wallets),
	}
	if snap.State == StateActive {
		snap.Mnemonic = string(s.phrase)
	}

	return snap
}

// State returns the lifecycle state
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state()
}

// Chain returns the currently selected chain
func (s *Session) Chain() chain.Chain {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.chain
}

// Mnemonic returns the current mnemonic, if any
func (s *Session) Mnemonic() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state() == StateEmpty {
		return "", false
	}

	return string(s.phrase), true
}

// Wallets returns copies of the derived wallets in account index order
func (s *Session) Wallets() []*DerivedWallet {
	s.mu.Lock()
	defer s.mu.Unlock()

	return cloneWallets(s.wallets)
}

// Wallet returns a copy of the wallet with the given local id
func (s *Session) Wallet(localID string) (*DerivedWallet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, w := range s.wallets {
		if w.LocalID == localID {
			return w.Clone(), nil
		}
	}

	return nil, errors.Wrapf(ErrWalletNotFound, "%q", localID)
}

func (s *Session) state() State {
	if s.seeds == nil || !s.seeds.IsInitialized() || len(s.wallets) == 0 {
		return StateEmpty
	}
	return StateActive
}

// deriveRange derives count wallets starting at account index start
func (s *Session) deriveRange(seeds *seed.Manager, c chain.Chain, start int, count int) ([]*DerivedWallet, error) {
	seedBytes := seeds.GetSeed()
	if seedBytes == nil {
		return nil, ErrNoMnemonic
	}
	defer seed.Zero(seedBytes)

	wallets := make([]*DerivedWallet, 0, count)
	for i := start; i < start+count; i++ {
		//nolint:gosec // session length is bounded far below 2^31
		index := uint32(i)
		path := chain.PathFor(c, index)

		keyPair, err := s.deriver.DeriveKey(seedBytes, c, path)
		if err != nil {
			zeroWallets(wallets)
			s.log.Error().Err(err).Str("path", path).Msg("Failed to derive key")
			return nil, errors.Wrapf(err, "failed to derive %s account %d", c, index)
		}

		wallets = append(wallets, &DerivedWallet{
			LocalID:       NewLocalID(c, keyPair.PublicAddress, index),
			Chain:         c,
			AccountIndex:  index,
			Path:          path,
			PublicAddress: keyPair.PublicAddress,
			PrivateKey:    keyPair.PrivateKey,
		})
	}

	return wallets, nil
}

func (s *Session) wipe() {
	seed.Zero(s.phrase)
	s.phrase = nil

	if s.seeds != nil {
		s.seeds.Clear()
		s.seeds = nil
	}

	zeroWallets(s.wallets)
	s.wallets = nil
}
