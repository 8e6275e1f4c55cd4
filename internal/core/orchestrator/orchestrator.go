// Package orchestrator is the only caller of the LXD client port. Each
// operation makes exactly one adapter call and converts whatever comes back
// into the error taxonomy of the domain package.
package orchestrator

import (
	"context"
	"fmt"

	"github.com/juju/errors"
	"github.com/sirupsen/logrus"

	"github.com/melih/lighthouse-lxd/internal/core/domain"
	"github.com/melih/lighthouse-lxd/internal/core/ports"
)

const (
	OpLaunch        = "launch"
	OpList          = "list"
	OpShow          = "show"
	OpDestroy       = "destroy"
	OpCreateProfile = "create-profile"
)

// Orchestrator holds no per-request state and is safe for concurrent use.
type Orchestrator struct {
	client ports.LXDClient
	log    logrus.FieldLogger
}

// New returns an Orchestrator dispatching to client.
func New(client ports.LXDClient, log logrus.FieldLogger) *Orchestrator {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Orchestrator{client: client, log: log.WithField("component", "orchestrator")}
}

// Create launches containerHostname on hostIP.
func (o *Orchestrator) Create(ctx context.Context, hostIP, containerHostname, image string) error {
	var res domain.LaunchResult
	err := o.invoke(OpLaunch, func() (err error) {
		res, err = o.client.Launch(ctx, hostIP, containerHostname, image)
		return err
	})
	if err != nil {
		return err
	}
	if !res.Success {
		msg := res.Error
		if msg == "" {
			msg = fmt.Sprintf("failed to launch container %s", containerHostname)
		}
		return &domain.RemoteOperationFailure{Op: OpLaunch, Message: msg}
	}
	o.log.WithFields(logrus.Fields{"host": hostIP, "container": containerHostname, "image": image}).Info("container launched")
	return nil
}

// List returns the containers of a host in host order. An empty result is
// not an error.
func (o *Orchestrator) List(ctx context.Context, hostIP, hostName string) ([]domain.Container, error) {
	var containers []domain.Container
	err := o.invoke(OpList, func() (err error) {
		containers, err = o.client.List(ctx, hostIP, hostName)
		return err
	})
	if err != nil {
		return nil, err
	}
	if containers == nil {
		containers = []domain.Container{}
	}
	return containers, nil
}

// Show returns one container. A missing container yields an error that
// satisfies errors.Is(err, errors.NotFound).
func (o *Orchestrator) Show(ctx context.Context, hostIP, containerHostname string) (*domain.Container, error) {
	var container *domain.Container
	err := o.invoke(OpShow, func() (err error) {
		container, err = o.client.Show(ctx, hostIP, containerHostname)
		return err
	})
	if err != nil {
		return nil, err
	}
	if container == nil {
		return nil, domain.NewContainerNotFound(hostIP, containerHostname)
	}
	return container, nil
}

// Destroy deletes a container. When the host refuses, the returned
// RemoteOperationFailure carries the host's message unmodified.
func (o *Orchestrator) Destroy(ctx context.Context, hostIP, containerHostname string) error {
	var res domain.DestroyResult
	err := o.invoke(OpDestroy, func() (err error) {
		res, err = o.client.Destroy(ctx, hostIP, containerHostname)
		return err
	})
	if err != nil {
		return err
	}
	if !res.Success {
		return &domain.RemoteOperationFailure{Op: OpDestroy, Message: res.Error}
	}
	o.log.WithFields(logrus.Fields{"host": hostIP, "container": containerHostname}).Info("container destroyed")
	return nil
}

// CreateProfile creates profile on hostIP.
func (o *Orchestrator) CreateProfile(ctx context.Context, hostIP string, profile domain.Profile) error {
	return o.invoke(OpCreateProfile, func() error {
		return o.client.CreateProfile(ctx, hostIP, profile)
	})
}

// invoke runs one adapter call and classifies its error. A panic inside the
// adapter becomes an InfrastructureFailure.
func (o *Orchestrator) invoke(op string, call func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			o.log.WithField("op", op).Errorf("lxd client panicked: %v", r)
			err = &domain.InfrastructureFailure{Op: op, Cause: errors.Errorf("lxd client panicked: %v", r)}
		}
	}()
	return o.classify(op, call())
}

func (o *Orchestrator) classify(op string, err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, errors.NotFound):
		// Only a lookup can miss; elsewhere the host refused the call.
		if op == OpShow {
			return err
		}
		return &domain.RemoteOperationFailure{Op: op, Message: err.Error()}
	case domain.IsRemoteFailure(err), domain.IsInfrastructureFailure(err):
		return err
	}
	o.log.WithFields(logrus.Fields{"op": op, "error": err}).Warn("lxd call failed")
	return &domain.InfrastructureFailure{Op: op, Cause: err}
}
