// Package services is the surface the rest of the program calls into. Each
// method validates its input, makes at most one downstream call and returns
// exactly one outcome.Outcome.
package services

import (
	"context"
	"time"

	"github.com/melih/lighthouse-lxd/internal/core/domain"
	"github.com/melih/lighthouse-lxd/internal/core/orchestrator"
	"github.com/melih/lighthouse-lxd/internal/core/outcome"
	"github.com/melih/lighthouse-lxd/internal/core/validation"
	"github.com/melih/lighthouse-lxd/internal/metrics"
)

// ContainerService manages containers on remote LXD hosts.
type ContainerService struct {
	orch    *orchestrator.Orchestrator
	metrics *metrics.Metrics
}

// NewContainerService returns a ContainerService. m may be nil.
func NewContainerService(orch *orchestrator.Orchestrator, m *metrics.Metrics) *ContainerService {
	return &ContainerService{orch: orch, metrics: m}
}

// CreateContainer launches a container. Blank image means the host default.
func (s *ContainerService) CreateContainer(ctx context.Context, req domain.ContainerRequest) outcome.Outcome {
	return record(s.metrics, "create_container", func() outcome.Outcome {
		if err := validation.CreateContainer(req); err != nil {
			return outcome.FromError(err)
		}
		return outcome.Create(s.orch.Create(ctx, req.LXDHostIPAddress, req.ContainerHostname, req.Image))
	})
}

// ListContainers lists the containers of one host.
func (s *ContainerService) ListContainers(ctx context.Context, req domain.ContainerRequest) outcome.Outcome {
	return record(s.metrics, "list_containers", func() outcome.Outcome {
		if err := validation.ListContainers(req); err != nil {
			return outcome.FromError(err)
		}
		return outcome.List(s.orch.List(ctx, req.LXDHostIPAddress, req.LXDHostname))
	})
}

// ShowContainer returns one container.
func (s *ContainerService) ShowContainer(ctx context.Context, req domain.ContainerRequest) outcome.Outcome {
	return record(s.metrics, "show_container", func() outcome.Outcome {
		if err := validation.ShowContainer(req); err != nil {
			return outcome.FromError(err)
		}
		return outcome.Show(s.orch.Show(ctx, req.LXDHostIPAddress, req.ContainerHostname))
	})
}

// DestroyContainer deletes a container.
func (s *ContainerService) DestroyContainer(ctx context.Context, req domain.ContainerRequest) outcome.Outcome {
	return record(s.metrics, "destroy_container", func() outcome.Outcome {
		if err := validation.DestroyContainer(req); err != nil {
			return outcome.FromError(err)
		}
		return outcome.Destroy(s.orch.Destroy(ctx, req.LXDHostIPAddress, req.ContainerHostname))
	})
}

func record(m *metrics.Metrics, operation string, serve func() outcome.Outcome) outcome.Outcome {
	started := time.Now()
	out := serve()
	m.Observe(operation, out.Kind.String(), started)
	return out
}
