package ports

//go:generate mockgen -package mocks -destination mocks/ports_mock.go github.com/melih/lighthouse-lxd/internal/core/ports LXDClient,HostRepository,KeyPairRepository,KeyGenerator

import (
	"context"

	"github.com/melih/lighthouse-lxd/internal/core/domain"
)

// LXDClient is the capability to talk to one LXD host, addressed by IP on
// every call. Implementations own transport, connection reuse and timeouts.
//
// Errors returned by an implementation are interpreted by the orchestrator:
// a NotFound error from Show means the container does not exist, a
// *domain.RemoteOperationFailure means the host rejected the request, and
// anything else is treated as an infrastructure failure.
type LXDClient interface {
	// Launch creates and starts a container. An empty image means the
	// host or profile default.
	Launch(ctx context.Context, hostIP, containerHostname, image string) (domain.LaunchResult, error)
	// List enumerates containers in the order the host returns them.
	// hostName identifies the host within a cluster and may be empty.
	List(ctx context.Context, hostIP, hostName string) ([]domain.Container, error)
	Show(ctx context.Context, hostIP, containerHostname string) (*domain.Container, error)
	Destroy(ctx context.Context, hostIP, containerHostname string) (domain.DestroyResult, error)
	CreateProfile(ctx context.Context, hostIP string, profile domain.Profile) error
}
