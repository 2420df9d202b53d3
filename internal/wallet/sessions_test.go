package wallet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/hdforge/go-wallet/internal/wallet"
	"github/hdforge/go-wallet/internal/wallet/chain"
)

func TestSessions(t *testing.T) {
	r := wallet.NewSessions(chain.Solana)
	assert.Equal(t, 0, r.Len())

	a := r.Get("user-a")
	assert.Same(t, a, r.Get("user-a"))
	assert.Equal(t, chain.Solana, a.Chain())

	b := r.Get("user-b")
	assert.NotSame(t, a, b)
	assert.Equal(t, 2, r.Len())

	_, _, err := a.GenerateNew(chain.Ethereum)
	require.NoError(t, err)
	assert.Equal(t, wallet.StateEmpty, b.State())

	r.Drop("user-a")
	assert.Equal(t, 1, r.Len())
	assert.Equal(t, wallet.StateEmpty, a.State())
	assert.NotSame(t, a, r.Get("user-a"))

	r.Drop("unknown")
	assert.Equal(t, 2, r.Len())
}

func TestSessionsOptions(t *testing.T) {
	r := wallet.NewSessions(chain.Ethereum, wallet.WithMaxWallets(1))

	s := r.Get("user")
	_, _, err := s.GenerateNew(chain.Ethereum)
	require.NoError(t, err)

	_, err = s.AddNext()
	require.ErrorIs(t, err, wallet.ErrWalletLimit)
}

func TestSessionsClear(t *testing.T) {
	r := wallet.NewSessions(chain.Ethereum)

	s := r.Get("user")
	_, _, err := s.GenerateNew(chain.Ethereum)
	require.NoError(t, err)

	r.Clear()
	assert.Equal(t, 0, r.Len())
	assert.Equal(t, wallet.StateEmpty, s.State())
}
