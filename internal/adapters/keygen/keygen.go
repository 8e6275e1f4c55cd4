package keygen

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"io"
	"strings"

	"github.com/juju/errors"
	"golang.org/x/crypto/ssh"

	"github.com/melih/lighthouse-lxd/internal/core/domain"
)

// Adapter implements ports.KeyGenerator with ed25519 keys.
type Adapter struct {
	rand io.Reader
}

func NewAdapter() *Adapter {
	return &Adapter{rand: rand.Reader}
}

// Generate creates an ed25519 key pair. The private key is an OpenSSH PEM
// block, the public key a single authorized_keys line ending in comment.
func (a *Adapter) Generate(ctx context.Context, comment string) (domain.KeyPair, error) {
	if err := ctx.Err(); err != nil {
		return domain.KeyPair{}, err
	}

	pub, priv, err := ed25519.GenerateKey(a.rand)
	if err != nil {
		return domain.KeyPair{}, errors.Annotate(err, "generating ed25519 key")
	}
	sshPub, err := ssh.NewPublicKey(pub)
	if err != nil {
		return domain.KeyPair{}, errors.Trace(err)
	}
	block, err := ssh.MarshalPrivateKey(priv, comment)
	if err != nil {
		return domain.KeyPair{}, errors.Annotate(err, "encoding private key")
	}

	return domain.KeyPair{
		PublicKey:   authorizedKey(sshPub, comment),
		PrivateKey:  string(pem.EncodeToMemory(block)),
		Fingerprint: ssh.FingerprintSHA256(sshPub),
	}, nil
}

// Fingerprint parses an authorized_keys line, dropping any options.
func (a *Adapter) Fingerprint(publicKey string) (string, string, error) {
	pub, comment, _, _, err := ssh.ParseAuthorizedKey([]byte(publicKey))
	if err != nil {
		return "", "", errors.NotValidf("public key")
	}
	return authorizedKey(pub, comment), ssh.FingerprintSHA256(pub), nil
}

func authorizedKey(pub ssh.PublicKey, comment string) string {
	line := strings.TrimSpace(string(ssh.MarshalAuthorizedKey(pub)))
	if comment = strings.TrimSpace(comment); comment != "" {
		line += " " + comment
	}
	return line
}
