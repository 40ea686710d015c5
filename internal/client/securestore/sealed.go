package securestore

import (
	"context"
	"crypto/rand"
	"fmt"
	"os"

	"golang.org/x/crypto/chacha20poly1305"

	"authkit/internal/client/repositories/state"
	"authkit/internal/common"
)

// SealedStore encrypts the token with XChaCha20-Poly1305 under a key loaded
// from (or created at) keyPath. The sealed blob is nonce||ciphertext, stored
// under common.TokenStorageKey in the state repository.
type SealedStore struct {
	repo    state.Repository
	keyPath string
}

// NewSealedStore builds a SealedStore. The key file is created lazily with
// 0600 permissions on first Save.
func NewSealedStore(repo state.Repository, keyPath string) *SealedStore {
	return &SealedStore{repo: repo, keyPath: keyPath}
}

// deviceKey reads the key file, generating it if create is set and the file
// does not exist yet.
func (s *SealedStore) deviceKey(create bool) ([]byte, error) {
	key, err := os.ReadFile(s.keyPath)
	if err == nil {
		if len(key) != chacha20poly1305.KeySize {
			return nil, fmt.Errorf("key file %s: %w", s.keyPath, common.ErrTokenCorrupted)
		}
		return key, nil
	}
	if !os.IsNotExist(err) || !create {
		return nil, fmt.Errorf("read key file: %w", err)
	}

	key = make([]byte, chacha20poly1305.KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("generate device key: %w", err)
	}
	if err := os.WriteFile(s.keyPath, key, 0o600); err != nil {
		return nil, fmt.Errorf("write key file: %w", err)
	}
	return key, nil
}

func (s *SealedStore) Save(ctx context.Context, token string) error {
	key, err := s.deviceKey(true)
	if err != nil {
		return err
	}

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return fmt.Errorf("init aead: %w", err)
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return fmt.Errorf("generate nonce: %w", err)
	}

	sealed := aead.Seal(nonce, nonce, []byte(token), nil)
	return s.repo.Set(ctx, common.TokenStorageKey, sealed)
}

func (s *SealedStore) Load(ctx context.Context) (string, error) {
	sealed, err := s.repo.Get(ctx, common.TokenStorageKey)
	if err != nil {
		return "", err
	}
	if sealed == nil {
		return "", nil
	}

	key, err := s.deviceKey(false)
	if err != nil {
		return "", err
	}

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return "", fmt.Errorf("init aead: %w", err)
	}

	if len(sealed) < aead.NonceSize() {
		return "", common.ErrTokenCorrupted
	}
	nonce, ciphertext := sealed[:aead.NonceSize()], sealed[aead.NonceSize():]

	token, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", common.ErrTokenCorrupted, err)
	}
	return string(token), nil
}

func (s *SealedStore) Delete(ctx context.Context) error {
	return s.repo.Delete(ctx, common.TokenStorageKey)
}
