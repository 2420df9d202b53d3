package keystore

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

const (
	keystoreDirMode  = 0o700
	keystoreFileMode = 0o600
)

// Save writes doc to path with owner-only permissions and returns ErrKeystoreExists instead of overwriting
func Save(path string, doc *KeystoreJSON) (err error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal keystore")
	}

	if err := os.MkdirAll(filepath.Dir(path), keystoreDirMode); err != nil {
		return errors.Wrap(err, "failed to create keystore directory")
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, keystoreFileMode)
	if errors.Is(err, os.ErrExist) {
		return ErrKeystoreExists
	}
	if err != nil {
		return errors.Wrap(err, "failed to create keystore file")
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "failed to close keystore file")
		}
	}()

	if _, err := f.Write(data); err != nil {
		return errors.Wrap(err, "failed to write keystore file")
	}

	return nil
}

// Load reads the document at path, a missing file yields ErrKeystoreNotFound
func Load(path string) (*KeystoreJSON, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrKeystoreNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read keystore file")
	}

	doc := &KeystoreJSON{}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, errors.Wrap(err, "failed to parse keystore")
	}

	return doc, nil
}
