package seed

import (
	"crypto/sha512"

	"github.com/pkg/errors"
	"github.com/tyler-smith/go-bip39"
	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/text/unicode/norm"
)

const (
	pbkdf2Iterations = 2048 // BIP39 standard iterations
	pbkdf2KeyLength  = 64   // BIP39 standard key length (512 bits)

	// Size is the length of a derived seed in bytes
	Size = pbkdf2KeyLength
)

// ErrInvalidMnemonic is returned for a mnemonic with a bad checksum, unknown words or a non-standard word count.
var ErrInvalidMnemonic = errors.New("invalid mnemonic")

// ToSeed validates the mnemonic and converts it to a 64-byte seed.
// BIP39: seed = PBKDF2(mnemonic, "mnemonic" + passphrase, 2048, 64, SHA512)
func ToSeed(mnemonic string, passphrase string) ([]byte, error) {
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, ErrInvalidMnemonic
	}

	password := norm.NFKD.String(mnemonic)
	salt := "mnemonic" + norm.NFKD.String(passphrase)

	return pbkdf2.Key(
		[]byte(password),
		[]byte(salt),
		pbkdf2Iterations,
		pbkdf2KeyLength,
		sha512.New,
	), nil
}
