package keystore

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/crypto/scrypt"
)

const (
	keystoreVersion = 3
	cipherName      = "aes-128-ctr"
	kdfName         = "scrypt"

	saltSize = 32
	ivSize   = aes.BlockSize

	// the first half of the derived key encrypts, the second half authenticates
	encKeySize = 16
	macKeySize = 16
)

// Encrypt seals mnemonic into a keystore v3 document protected by password
func Encrypt(mnemonic string, password string, params *ScryptParams) (*KeystoreJSON, error) {
	if params == nil {
		params = DefaultScryptParams()
	}

	salt, err := randomBytes(saltSize)
	if err != nil {
		return nil, err
	}

	iv, err := randomBytes(ivSize)
	if err != nil {
		return nil, err
	}

	encKey, macKey, err := deriveKeys(password, salt, params.N, params.R, params.P, params.DKLen)
	if err != nil {
		return nil, err
	}
	defer zero(encKey, macKey)

	plaintext := []byte(mnemonic)
	defer zero(plaintext)

	ciphertext, err := xorCTR(encKey, iv, plaintext)
	if err != nil {
		return nil, err
	}

	ks := &KeystoreJSON{
		Version: keystoreVersion,
		ID:      uuid.New().String(),
	}

	c := &ks.Crypto
	c.Cipher = cipherName
	c.CipherParams.IV = hex.EncodeToString(iv)
	c.Ciphertext = hex.EncodeToString(ciphertext)
	c.KDF = kdfName
	c.KDFParams.DKLen = params.DKLen
	c.KDFParams.N = params.N
	c.KDFParams.R = params.R
	c.KDFParams.P = params.P
	c.KDFParams.Salt = hex.EncodeToString(salt)
	c.MAC = hex.EncodeToString(crypto.Keccak256(macKey, ciphertext))

	return ks, nil
}

// Decrypt opens ks with password. A wrong password or a modified ciphertext yields ErrInvalidPassword.
func Decrypt(ks *KeystoreJSON, password string) (string, error) {
	c := &ks.Crypto
	if c.Cipher != cipherName || c.KDF != kdfName {
		return "", errors.Errorf("unsupported keystore cipher %q / kdf %q", c.Cipher, c.KDF)
	}

	fields := map[string]string{
		"salt":       c.KDFParams.Salt,
		"iv":         c.CipherParams.IV,
		"ciphertext": c.Ciphertext,
		"mac":        c.MAC,
	}
	decoded := make(map[string][]byte, len(fields))
	for name, value := range fields {
		b, err := hex.DecodeString(value)
		if err != nil {
			return "", errors.Wrapf(err, "failed to decode %s", name)
		}
		decoded[name] = b
	}

	encKey, macKey, err := deriveKeys(password, decoded["salt"], c.KDFParams.N, c.KDFParams.R, c.KDFParams.P, c.KDFParams.DKLen)
	if err != nil {
		return "", err
	}
	defer zero(encKey, macKey)

	mac := crypto.Keccak256(macKey, decoded["ciphertext"])
	if subtle.ConstantTimeCompare(mac, decoded["mac"]) != 1 {
		return "", ErrInvalidPassword
	}

	plaintext, err := xorCTR(encKey, decoded["iv"], decoded["ciphertext"])
	if err != nil {
		return "", err
	}
	defer zero(plaintext)

	return string(plaintext), nil
}

// deriveKeys runs scrypt and splits the result into the AES key and the MAC key
func deriveKeys(password string, salt []byte, n, r, p, dkLen int) ([]byte, []byte, error) {
	if dkLen < encKeySize+macKeySize {
		return nil, nil, errors.Errorf("derived key length %d too short", dkLen)
	}

	dk, err := scrypt.Key([]byte(password), salt, n, r, p, dkLen)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to derive key")
	}

	return dk[:encKeySize], dk[encKeySize : encKeySize+macKeySize], nil
}

// xorCTR applies AES-CTR, which encrypts and decrypts alike
func xorCTR(key []byte, iv []byte, in []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create cipher")
	}
	if len(iv) != block.BlockSize() {
		return nil, errors.Errorf("invalid iv length %d", len(iv))
	}

	out := make([]byte, len(in))
	cipher.NewCTR(block, iv).XORKeyStream(out, in)

	return out, nil
}

func randomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, errors.Wrap(err, "failed to read random bytes")
	}
	return b, nil
}

func zero(bs ...[]byte) {
	for _, b := range bs {
		for i := range b {
			b[i] = 0
		}
	}
}
