package ports

import (
	"context"

	"github.com/melih/lighthouse-lxd/internal/core/domain"
)

// KeyGenerator produces SSH credentials for key pairs.
type KeyGenerator interface {
	// Generate creates a new key pair. The returned record has PublicKey,
	// PrivateKey and Fingerprint set.
	Generate(ctx context.Context, comment string) (domain.KeyPair, error)
	// Fingerprint parses an authorized_keys formatted public key and returns
	// its normalised form and SHA256 fingerprint.
	Fingerprint(publicKey string) (normalized string, fingerprint string, err error)
}
