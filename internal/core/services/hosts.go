package services

import (
	"context"
	"strings"

	"github.com/juju/errors"

	"github.com/melih/lighthouse-lxd/internal/core/domain"
	"github.com/melih/lighthouse-lxd/internal/core/outcome"
	"github.com/melih/lighthouse-lxd/internal/core/ports"
	"github.com/melih/lighthouse-lxd/internal/core/validation"
	"github.com/melih/lighthouse-lxd/internal/metrics"
)

// HostService registers and looks up container hosts.
type HostService struct {
	repo    ports.HostRepository
	metrics *metrics.Metrics
}

func NewHostService(repo ports.HostRepository, m *metrics.Metrics) *HostService {
	return &HostService{repo: repo, metrics: m}
}

// RegisterHost stores a new host. The ipaddress must not be registered yet.
func (s *HostService) RegisterHost(ctx context.Context, host domain.ContainerHost) outcome.Outcome {
	return record(s.metrics, "register_host", func() outcome.Outcome {
		if err := validation.RegisterHost(host); err != nil {
			return outcome.FromError(err)
		}
		host.IPAddress = strings.TrimSpace(host.IPAddress)
		host.Hostname = strings.TrimSpace(host.Hostname)

		created, err := s.repo.Create(ctx, host)
		if errors.Is(err, errors.AlreadyExists) {
			var errs validation.Errors
			errs.Add("ipaddress", "has already been taken")
			return outcome.FromError(errs.Err())
		}
		if err != nil {
			return outcome.FromError(storeFailure("register host", err))
		}
		return outcome.Created(created)
	})
}

// ListHosts returns every registered host.
func (s *HostService) ListHosts(ctx context.Context) outcome.Outcome {
	return record(s.metrics, "list_hosts", func() outcome.Outcome {
		hosts, err := s.repo.List(ctx)
		if err != nil {
			return outcome.FromError(storeFailure("list hosts", err))
		}
		if hosts == nil {
			hosts = []domain.ContainerHost{}
		}
		return outcome.OK(hosts)
	})
}

// ShowHost returns one host by id.
func (s *HostService) ShowHost(ctx context.Context, id int64) outcome.Outcome {
	return record(s.metrics, "show_host", func() outcome.Outcome {
		host, err := s.repo.Get(ctx, id)
		if err != nil {
			return outcome.FromError(storeFailure("show host", err))
		}
		return outcome.OK(host)
	})
}

// storeFailure keeps NotFound errors as they are and marks everything else
// as an infrastructure failure of the record store.
func storeFailure(op string, err error) error {
	if errors.Is(err, errors.NotFound) {
		return err
	}
	return &domain.InfrastructureFailure{Op: op, Cause: err}
}
