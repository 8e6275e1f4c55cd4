package keygen_test

import (
	"context"
	"strings"
	"testing"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/ssh"

	"github.com/melih/lighthouse-lxd/internal/adapters/keygen"
)

func TestGenerate(t *testing.T) {
	a := keygen.NewAdapter()

	kp, err := a.Generate(context.Background(), "deploy")
	require.NoError(t, err)

	pub, comment, _, _, err := ssh.ParseAuthorizedKey([]byte(kp.PublicKey))
	require.NoError(t, err)
	assert.Equal(t, "deploy", comment)
	assert.Equal(t, ssh.KeyAlgoED25519, pub.Type())
	assert.Equal(t, ssh.FingerprintSHA256(pub), kp.Fingerprint)
	assert.True(t, strings.HasPrefix(kp.Fingerprint, "SHA256:"))

	signer, err := ssh.ParsePrivateKey([]byte(kp.PrivateKey))
	require.NoError(t, err)
	assert.Equal(t, pub.Marshal(), signer.PublicKey().Marshal())
}

func TestGenerateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := keygen.NewAdapter().Generate(ctx, "deploy")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFingerprint(t *testing.T) {
	a := keygen.NewAdapter()
	generated, err := a.Generate(context.Background(), "ops@example")
	require.NoError(t, err)

	normalized, fingerprint, err := a.Fingerprint("  " + generated.PublicKey + "\n")
	require.NoError(t, err)
	assert.Equal(t, generated.PublicKey, normalized)
	assert.Equal(t, generated.Fingerprint, fingerprint)

	_, _, err = a.Fingerprint("not a key")
	assert.True(t, errors.Is(err, errors.NotValid))
}
