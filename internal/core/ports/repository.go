package ports

import (
	"context"

	"github.com/melih/lighthouse-lxd/internal/core/domain"
)

// HostRepository persists registered container hosts.
// Create returns an AlreadyExists error when the ipaddress is taken.
type HostRepository interface {
	Create(ctx context.Context, host domain.ContainerHost) (domain.ContainerHost, error)
	List(ctx context.Context) ([]domain.ContainerHost, error)
	Get(ctx context.Context, id int64) (domain.ContainerHost, error)
}

// KeyPairRepository persists key pair records. Lookups of unknown ids
// return NotFound errors.
type KeyPairRepository interface {
	Create(ctx context.Context, kp domain.KeyPair) error
	List(ctx context.Context) ([]domain.KeyPair, error)
	Get(ctx context.Context, id string) (domain.KeyPair, error)
	Update(ctx context.Context, kp domain.KeyPair) error
	Delete(ctx context.Context, id string) error
}
