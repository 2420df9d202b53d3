package keystore

import (
	"github.com/pkg/errors"
	"github/hdforge/go-wallet/internal/config"
)

var (
	ErrInvalidPassword  = errors.New("invalid password: MAC mismatch")
	ErrKeystoreExists   = errors.New("keystore already exists")
	ErrKeystoreNotFound = errors.New("keystore not found")
)

// Keystore is an encrypted mnemonic backup stored at Path
type Keystore struct {
	Path string
	KeystoreJSON
}

type cipherParams struct {
	IV string `json:"iv"`
}

type kdfParams struct {
	DKLen int    `json:"dklen"`
	Salt  string `json:"salt"`
	N     int    `json:"n"`
	R     int    `json:"r"`
	P     int    `json:"p"`
}

type cryptoSection struct {
	Ciphertext   string       `json:"ciphertext"`
	CipherParams cipherParams `json:"cipherparams"`
	Cipher       string       `json:"cipher"`
	KDF          string       `json:"kdf"`
	KDFParams    kdfParams    `json:"kdfparams"`
	MAC          string       `json:"mac"`
}

// KeystoreJSON is the v3 keystore document layout. The sealed payload is the mnemonic phrase, not a private key.
//
//nolint:revive
type KeystoreJSON struct {
	Version int    `json:"version"`
	ID      string `json:"id"`
	// Address is account 0 on Ethereum for the sealed mnemonic, checked after decryption
	Address string        `json:"address"`
	Crypto  cryptoSection `json:"crypto"`
}

// ScryptParams are the scrypt cost settings used when sealing a backup
type ScryptParams struct {
	N     int
	R     int
	P     int
	DKLen int
}

const (
	standardScryptN = 1 << 18
	standardScryptP = 1
	lightScryptN    = 1 << 12
	lightScryptP    = 6

	scryptR     = 8
	scryptDKLen = encKeySize + macKeySize
)

// DefaultScryptParams matches the standard geth cost
func DefaultScryptParams() *ScryptParams {
	return &ScryptParams{N: standardScryptN, R: scryptR, P: standardScryptP, DKLen: scryptDKLen}
}

// LightScryptParams matches the geth light cost, used in tests and on constrained hosts
func LightScryptParams() *ScryptParams {
	return &ScryptParams{N: lightScryptN, R: scryptR, P: lightScryptP, DKLen: scryptDKLen}
}

// ScryptParamsFromConfig overrides N and P of the defaults with positive configured values
func ScryptParamsFromConfig(cfg config.KeystoreServer) *ScryptParams {
	params := DefaultScryptParams()
	if cfg.ScryptN > 0 {
		params.N = cfg.ScryptN
	}
	if cfg.ScryptP > 0 {
		params.P = cfg.ScryptP
	}

	return params
}
