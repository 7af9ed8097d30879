package xmss

import (
	"fmt"
	"os"
)

// File-based keypair helpers: two flat files holding the canonical public
// and secret encodings. What to do with those files (encryption, rotation,
// directory layout) is the caller's concern.

// LoadKeyPair reads canonical public and secret key files and restores the
// signing key from them.
func LoadKeyPair(pkPath, skPath string) (*SigningKey, error) {
	pkBytes, err := os.ReadFile(pkPath)
	if err != nil {
		return nil, fmt.Errorf("read public key %s: %w", pkPath, err)
	}
	skBytes, err := os.ReadFile(skPath)
	if err != nil {
		return nil, fmt.Errorf("read secret key %s: %w", skPath, err)
	}
	return Restore(pkBytes, skBytes)
}

// SaveKeyPair writes the key's canonical encodings to the given paths,
// creating or overwriting the files. The secret key file is written with
// 0600 permissions.
func SaveKeyPair(k *SigningKey, pkPath, skPath string) error {
	pkBytes, err := k.PublicKeyBytes()
	if err != nil {
		return err
	}
	skBytes, err := k.SecretKeyBytes()
	if err != nil {
		return err
	}

	if err := os.WriteFile(pkPath, pkBytes, 0o644); err != nil {
		return fmt.Errorf("write public key %s: %w", pkPath, err)
	}
	if err := os.WriteFile(skPath, skBytes, 0o600); err != nil {
		return fmt.Errorf("write secret key %s: %w", skPath, err)
	}
	return nil
}
