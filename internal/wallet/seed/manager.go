package seed

import "sync"

// Manager keeps a single BIP-39 seed in memory and hands out copies of it.
// The zero value is an empty manager.
type Manager struct {
	mu   sync.RWMutex
	seed []byte
}

func NewManager() *Manager {
	return &Manager{}
}

// Initialize replaces the held seed with the one derived from mnemonic and passphrase.
// The old seed is wiped even if derivation fails.
func (m *Manager) Initialize(mnemonic string, passphrase string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	Zero(m.seed)
	m.seed = nil

	s, err := ToSeed(mnemonic, passphrase)
	if err != nil {
		return err
	}
	m.seed = s

	return nil
}

// GetSeed returns a copy of the seed or nil. Callers should Zero the copy when done.
func (m *Manager) GetSeed() []byte {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.seed == nil {
		return nil
	}

	return append([]byte(nil), m.seed...)
}

func (m *Manager) IsInitialized() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.seed != nil
}

// Clear wipes the seed
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	Zero(m.seed)
	m.seed = nil
}

// Zero overwrites b with zeros, nil is a no-op
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
