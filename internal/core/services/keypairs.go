package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/melih/lighthouse-lxd/internal/core/domain"
	"github.com/melih/lighthouse-lxd/internal/core/outcome"
	"github.com/melih/lighthouse-lxd/internal/core/ports"
	"github.com/melih/lighthouse-lxd/internal/core/validation"
	"github.com/melih/lighthouse-lxd/internal/metrics"
)

// KeyPairService manages SSH key pair records.
type KeyPairService struct {
	repo    ports.KeyPairRepository
	keygen  ports.KeyGenerator
	metrics *metrics.Metrics
	now     func() time.Time
}

func NewKeyPairService(repo ports.KeyPairRepository, keygen ports.KeyGenerator, m *metrics.Metrics) *KeyPairService {
	return &KeyPairService{repo: repo, keygen: keygen, metrics: m, now: time.Now}
}

// CreateKeyPair imports kp.PublicKey, or generates a fresh pair when it is
// blank. Only a generated pair carries PrivateKey, and only in this
// response.
func (s *KeyPairService) CreateKeyPair(ctx context.Context, kp domain.KeyPair) outcome.Outcome {
	return record(s.metrics, "create_key_pair", func() outcome.Outcome {
		if err := validation.CreateKeyPair(kp); err != nil {
			return outcome.FromError(err)
		}
		kp.Name = strings.TrimSpace(kp.Name)

		if strings.TrimSpace(kp.PublicKey) == "" {
			generated, err := s.keygen.Generate(ctx, kp.Name)
			if err != nil {
				return outcome.FromError(&domain.InfrastructureFailure{Op: "generate key pair", Cause: err})
			}
			kp.PublicKey = generated.PublicKey
			kp.PrivateKey = generated.PrivateKey
			kp.Fingerprint = generated.Fingerprint
		} else {
			normalized, fingerprint, err := s.keygen.Fingerprint(kp.PublicKey)
			if err != nil {
				var errs validation.Errors
				errs.Add("public_key", "is invalid")
				return outcome.FromError(errs.Err())
			}
			kp.PublicKey = normalized
			kp.PrivateKey = ""
			kp.Fingerprint = fingerprint
		}

		kp.ID = uuid.NewString()
		kp.CreatedAt = s.now().UTC()
		kp.UpdatedAt = kp.CreatedAt

		stored := kp
		stored.PrivateKey = ""
		if err := s.repo.Create(ctx, stored); err != nil {
			return outcome.FromError(storeFailure("create key pair", err))
		}
		return outcome.Created(kp)
	})
}

// ListKeyPairs returns every key pair, without private keys.
func (s *KeyPairService) ListKeyPairs(ctx context.Context) outcome.Outcome {
	return record(s.metrics, "list_key_pairs", func() outcome.Outcome {
		kps, err := s.repo.List(ctx)
		if err != nil {
			return outcome.FromError(storeFailure("list key pairs", err))
		}
		if kps == nil {
			kps = []domain.KeyPair{}
		}
		return outcome.OK(kps)
	})
}

// ShowKeyPair returns one key pair by id.
func (s *KeyPairService) ShowKeyPair(ctx context.Context, id string) outcome.Outcome {
	return record(s.metrics, "show_key_pair", func() outcome.Outcome {
		kp, err := s.repo.Get(ctx, id)
		if err != nil {
			return outcome.FromError(storeFailure("show key pair", err))
		}
		return outcome.OK(kp)
	})
}

// UpdateKeyPair renames a key pair. Key material is immutable.
func (s *KeyPairService) UpdateKeyPair(ctx context.Context, id string, changes domain.KeyPair) outcome.Outcome {
	return record(s.metrics, "update_key_pair", func() outcome.Outcome {
		if err := validation.UpdateKeyPair(changes); err != nil {
			return outcome.FromError(err)
		}
		kp, err := s.repo.Get(ctx, id)
		if err != nil {
			return outcome.FromError(storeFailure("update key pair", err))
		}
		kp.Name = strings.TrimSpace(changes.Name)
		kp.UpdatedAt = s.now().UTC()
		if err := s.repo.Update(ctx, kp); err != nil {
			return outcome.FromError(storeFailure("update key pair", err))
		}
		return outcome.OK(kp)
	})
}

// DeleteKeyPair removes a key pair.
func (s *KeyPairService) DeleteKeyPair(ctx context.Context, id string) outcome.Outcome {
	return record(s.metrics, "delete_key_pair", func() outcome.Outcome {
		if err := s.repo.Delete(ctx, id); err != nil {
			return outcome.FromError(storeFailure("delete key pair", err))
		}
		return outcome.Deleted()
	})
}
