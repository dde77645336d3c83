// Package storage persists uploaded attachment files on local disk.
package storage

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	pkgcrypto "noteshare/internal/crypto"
)

// Local writes uploads under a single directory. A random prefix keeps
// distinct uploads with the same client filename from colliding.
type Local struct{ dir string }

// NewLocal creates the upload directory if needed and returns the store.
func NewLocal(dir string) (*Local, error) {
	if dir == "" {
		return nil, errors.New("empty upload dir")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Local{dir: dir}, nil
}

// Dir returns the root upload directory.
func (l *Local) Dir() string { return l.dir }

// Save writes the content and returns the stored filename.
func (l *Local) Save(filename string, r io.Reader) (string, error) {
	base := filepath.Base(filename)
	if base == "." || base == string(filepath.Separator) {
		return "", errors.New("bad filename")
	}
	prefix, err := pkgcrypto.RandBytes(8)
	if err != nil {
		return "", err
	}
	name := fmt.Sprintf("%s-%s", hex.EncodeToString(prefix), base)

	f, err := os.Create(filepath.Join(l.dir, name))
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return name, nil
}
