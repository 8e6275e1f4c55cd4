package services

import (
	"context"
	"strconv"

	"github.com/docker/go-units"

	"github.com/melih/lighthouse-lxd/internal/core/domain"
	"github.com/melih/lighthouse-lxd/internal/core/orchestrator"
	"github.com/melih/lighthouse-lxd/internal/core/outcome"
	"github.com/melih/lighthouse-lxd/internal/core/validation"
	"github.com/melih/lighthouse-lxd/internal/metrics"
)

// LXD profile config keys written from the typed limits.
const (
	ConfigLimitsCPU    = "limits.cpu"
	ConfigLimitsMemory = "limits.memory"
)

// ProfileService creates container profiles on hosts.
type ProfileService struct {
	orch    *orchestrator.Orchestrator
	metrics *metrics.Metrics
}

func NewProfileService(orch *orchestrator.Orchestrator, m *metrics.Metrics) *ProfileService {
	return &ProfileService{orch: orch, metrics: m}
}

// CreateProfile validates the request, folds the typed limits into the
// profile config and creates it on the requested host.
func (s *ProfileService) CreateProfile(ctx context.Context, req domain.ProfileRequest) outcome.Outcome {
	return record(s.metrics, "create_profile", func() outcome.Outcome {
		if err := validation.CreateProfile(req); err != nil {
			return outcome.FromError(err)
		}
		profile := ProfileConfig(req.Profile)
		if err := s.orch.CreateProfile(ctx, req.LXDHostIPAddress, profile); err != nil {
			return outcome.FromError(err)
		}
		return outcome.Created(profile)
	})
}

// ProfileConfig returns a copy of p whose Config carries limits.cpu and
// limits.memory (in bytes) for the typed limits. p must have been validated.
func ProfileConfig(p domain.Profile) domain.Profile {
	config := make(map[string]string, len(p.Config)+2)
	for k, v := range p.Config {
		config[k] = v
	}
	if p.CPULimit != "" {
		config[ConfigLimitsCPU] = p.CPULimit
	}
	if p.MemoryLimit != "" {
		if n, err := units.RAMInBytes(p.MemoryLimit); err == nil {
			config[ConfigLimitsMemory] = strconv.FormatInt(n, 10)
		}
	}
	p.Config = config
	return p
}
