// Package keystore is the encrypted-at-rest credential store. Values are
// kept one file per key under a private directory, sealed with
// XChaCha20-Poly1305 under a key derived from the configured passphrase.
package keystore

import (
	"context"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"

	"auth-client/app/domain"
)

const (
	saltFile   = ".salt"
	saltLength = 16
	fileMode   = 0o600
	dirMode    = 0o700
)

// Argon2id parameters for the passphrase KDF.
const (
	kdfTime    = 1
	kdfMemory  = 64 * 1024
	kdfThreads = 4
)

var validKey = regexp.MustCompile(`^[a-z0-9_]+$`)

// Store implements port.CredentialStore on the local filesystem.
type Store struct {
	dir    string
	aead   cipher.AEAD
	logger *slog.Logger
}

// New opens (or initializes) the store at dir. The first open generates a
// random KDF salt kept alongside the data files.
func New(dir, passphrase string, logger *slog.Logger) (*Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("keystore directory is required")
	}
	if passphrase == "" {
		return nil, fmt.Errorf("keystore passphrase is required")
	}

	if err := os.MkdirAll(dir, dirMode); err != nil {
		return nil, fmt.Errorf("failed to create keystore directory: %w", err)
	}

	salt, err := loadOrCreateSalt(dir)
	if err != nil {
		return nil, err
	}

	key := argon2.IDKey([]byte(passphrase), salt, kdfTime, kdfMemory, kdfThreads, chacha20poly1305.KeySize)
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cipher: %w", err)
	}

	return &Store{
		dir:    dir,
		aead:   aead,
		logger: logger.With("component", "keystore"),
	}, nil
}

// Read returns the value stored under key. Missing keys are reported as
// domain.ErrCredentialNotFound.
func (s *Store) Read(ctx context.Context, key string) (string, error) {
	if err := validateKey(key); err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	sealed, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return "", fmt.Errorf("read %s: %w", key, domain.ErrCredentialNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read key %s: %w", key, err)
	}

	if len(sealed) < s.aead.NonceSize() {
		return "", fmt.Errorf("corrupt entry for key %s", key)
	}

	nonce, ciphertext := sealed[:s.aead.NonceSize()], sealed[s.aead.NonceSize():]
	// The key name is bound as additional data, so an entry copied onto
	// another key name fails to open.
	plaintext, err := s.aead.Open(nil, nonce, ciphertext, []byte(key))
	if err != nil {
		return "", fmt.Errorf("failed to decrypt key %s: %w", key, err)
	}

	return string(plaintext), nil
}

// Write stores value under key. The write is atomic per key: the sealed
// value lands in a temp file that is renamed over the previous entry.
func (s *Store) Write(ctx context.Context, key, value string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	nonce := make([]byte, s.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return fmt.Errorf("failed to generate nonce: %w", err)
	}

	sealed := s.aead.Seal(nonce, nonce, []byte(value), []byte(key))

	tmp, err := os.CreateTemp(s.dir, key+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file for key %s: %w", key, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(sealed); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file for key %s: %w", key, err)
	}
	if err := os.Chmod(tmpName, fileMode); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to set permissions for key %s: %w", key, err)
	}

	if err := os.Rename(tmpName, s.path(key)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to commit key %s: %w", key, err)
	}

	s.logger.Debug("credential written", "key", key)
	return nil
}

// ClearAll removes every stored entry, including keys written by older
// schema versions. The KDF salt survives so the store stays usable.
func (s *Store) ClearAll(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return fmt.Errorf("failed to list keystore directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || entry.Name() == saltFile {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, entry.Name())); err != nil {
			return fmt.Errorf("failed to remove %s: %w", entry.Name(), err)
		}
	}

	s.logger.Info("credential store cleared")
	return nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key)
}

func validateKey(key string) error {
	if !validKey.MatchString(key) {
		return fmt.Errorf("invalid keystore key: %q", key)
	}
	return nil
}

func loadOrCreateSalt(dir string) ([]byte, error) {
	path := filepath.Join(dir, saltFile)

	salt, err := os.ReadFile(path)
	if err == nil {
		if len(salt) != saltLength {
			return nil, fmt.Errorf("corrupt keystore salt (length %d)", len(salt))
		}
		return salt, nil
	}
	if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read keystore salt: %w", err)
	}

	salt = make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("failed to generate keystore salt: %w", err)
	}
	if err := os.WriteFile(path, salt, fileMode); err != nil {
		return nil, fmt.Errorf("failed to persist keystore salt: %w", err)
	}

	return salt, nil
}
