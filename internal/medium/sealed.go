package medium

import (
	"context"
	"fmt"

	"github.com/nuesadev/scholarengine/internal/cryptox"
)

// saltKey is the reserved medium key holding the key-derivation salt. It is
// the only value stored unsealed; the document store never uses this key.
const saltKey = "__seal_salt"

// SealedMedium wraps another Medium and AES-GCM-encrypts every value with a
// key derived from a passphrase. A value that fails to open (tampered,
// truncated, or sealed under a different passphrase) is reported as absent
// rather than as an error, so corruption degrades to "no data" exactly like
// a corrupt plaintext blob does.
type SealedMedium struct {
	inner Medium
	key   []byte
}

// NewSealedMedium derives the sealing key from passphrase and the salt
// persisted in inner, generating and storing a fresh salt on first use.
func NewSealedMedium(ctx context.Context, inner Medium, passphrase string) (*SealedMedium, error) {
	salt, ok, err := inner.Get(ctx, saltKey)
	if err != nil {
		return nil, fmt.Errorf("reading salt: %w", err)
	}
	if !ok {
		salt, err = cryptox.NewSalt()
		if err != nil {
			return nil, err
		}
		if err := inner.Put(ctx, saltKey, salt); err != nil {
			return nil, fmt.Errorf("storing salt: %w", err)
		}
	}

	return &SealedMedium{
		inner: inner,
		key:   cryptox.DeriveKey([]byte(passphrase), salt),
	}, nil
}

func (s *SealedMedium) Get(ctx context.Context, key string) ([]byte, bool, error) {
	sealed, ok, err := s.inner.Get(ctx, key)
	if err != nil || !ok {
		return nil, false, err
	}

	plaintext, err := cryptox.Open(sealed, s.key)
	if err != nil {
		// fail closed: undecryptable means absent
		return nil, false, nil
	}
	return plaintext, true, nil
}

func (s *SealedMedium) Put(ctx context.Context, key string, value []byte) error {
	sealed, err := cryptox.Seal(value, s.key)
	if err != nil {
		return fmt.Errorf("sealing %q: %w", key, err)
	}
	return s.inner.Put(ctx, key, sealed)
}

func (s *SealedMedium) Delete(ctx context.Context, key string) error {
	return s.inner.Delete(ctx, key)
}

func (s *SealedMedium) Close() error {
	return s.inner.Close()
}
