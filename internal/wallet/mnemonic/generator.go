package mnemonic

import (
	"crypto/rand"
	"io"

	"github.com/pkg/errors"
	"github.com/tyler-smith/go-bip39"
)

const (
	// EntropyBits is the entropy size of generated mnemonics (12 words).
	EntropyBits = 128

	// WordCount is the number of words in a generated mnemonic.
	WordCount = 12
)

// ErrEntropySourceUnavailable is returned when the random source cannot supply entropy.
var ErrEntropySourceUnavailable = errors.New("entropy source unavailable")

// Generator produces fresh BIP39 mnemonics
type Generator interface {
	// Generate returns a new 12-word mnemonic backed by fresh entropy
	Generate() (string, error)
}

type generator struct {
	random io.Reader
}

// NewGenerator creates a Generator reading entropy from random.
// A nil reader falls back to crypto/rand.
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewGenerator(random io.Reader) Generator {
	if random == nil {
		random = rand.Reader
	}

	return &generator{random: random}
}

// Generate reads EntropyBits of entropy and encodes it as a mnemonic
func (g *generator) Generate() (string, error) {
	entropy := make([]byte, EntropyBits/8)
	defer func() {
		for i := range entropy {
			entropy[i] = 0
		}
	}()

	if _, err := io.ReadFull(g.random, entropy); err != nil {
		return "", errors.Wrap(ErrEntropySourceUnavailable, err.Error())
	}

	phrase, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", errors.Wrap(err, "failed to encode mnemonic")
	}

	return phrase, nil
}

// Generate creates a new mnemonic using the system random source
func Generate() (string, error) {
	return NewGenerator(nil).Generate()
}

// Validate checks word list membership, word count and checksum
func Validate(phrase string) bool {
	return bip39.IsMnemonicValid(phrase)
}
