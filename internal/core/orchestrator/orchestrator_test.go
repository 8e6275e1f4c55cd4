package orchestrator_test

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/juju/errors"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/melih/lighthouse-lxd/internal/core/domain"
	"github.com/melih/lighthouse-lxd/internal/core/orchestrator"
	"github.com/melih/lighthouse-lxd/internal/core/ports/mocks"
)

const (
	hostIP    = "172.16.7.2"
	container = "p-user-service-01"
)

func newOrchestrator(t *testing.T) (*orchestrator.Orchestrator, *mocks.MockLXDClient) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockLXDClient(ctrl)
	logger, _ := test.NewNullLogger()
	return orchestrator.New(client, logger), client
}

func TestCreate(t *testing.T) {
	o, client := newOrchestrator(t)
	ctx := context.Background()

	client.EXPECT().Launch(ctx, hostIP, container, "ubuntu:16.04").Return(domain.LaunchResult{Success: true}, nil)
	assert.NoError(t, o.Create(ctx, hostIP, container, "ubuntu:16.04"))
}

func TestCreateWithoutImage(t *testing.T) {
	o, client := newOrchestrator(t)
	ctx := context.Background()

	client.EXPECT().Launch(ctx, hostIP, container, "").Return(domain.LaunchResult{Success: true}, nil)
	assert.NoError(t, o.Create(ctx, hostIP, container, ""))
}

func TestCreateRemoteFailure(t *testing.T) {
	o, client := newOrchestrator(t)
	ctx := context.Background()

	client.EXPECT().Launch(ctx, hostIP, container, "").Return(domain.LaunchResult{Success: false}, nil)
	err := o.Create(ctx, hostIP, container, "")

	var rf *domain.RemoteOperationFailure
	require.True(t, errors.As(err, &rf))
	assert.Equal(t, orchestrator.OpLaunch, rf.Op)
	assert.NotEmpty(t, rf.Message)
	assert.False(t, domain.IsInfrastructureFailure(err))
}

func TestCreateTransportFailure(t *testing.T) {
	o, client := newOrchestrator(t)
	ctx := context.Background()

	dialErr := &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}
	client.EXPECT().Launch(ctx, hostIP, container, "").Return(domain.LaunchResult{}, dialErr)
	err := o.Create(ctx, hostIP, container, "")

	var inf *domain.InfrastructureFailure
	require.True(t, errors.As(err, &inf))
	assert.Equal(t, orchestrator.OpLaunch, inf.Op)
	assert.ErrorIs(t, err, dialErr)
	assert.False(t, domain.IsRemoteFailure(err))
}

func TestListKeepsHostOrder(t *testing.T) {
	o, client := newOrchestrator(t)
	ctx := context.Background()

	want := []domain.Container{
		{Hostname: "p-user-02"},
		{Hostname: "p-user-01"},
		{Hostname: "p-user-03"},
	}
	client.EXPECT().List(ctx, hostIP, "p-lxc-01").Return(want, nil)

	got, err := o.List(ctx, hostIP, "p-lxc-01")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestListEmpty(t *testing.T) {
	o, client := newOrchestrator(t)
	ctx := context.Background()

	client.EXPECT().List(ctx, hostIP, "").Return(nil, nil)

	got, err := o.List(ctx, hostIP, "")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestListTimeout(t *testing.T) {
	o, client := newOrchestrator(t)
	ctx := context.Background()

	client.EXPECT().List(ctx, hostIP, "").Return(nil, context.DeadlineExceeded)

	_, err := o.List(ctx, hostIP, "")
	assert.True(t, domain.IsInfrastructureFailure(err))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestShow(t *testing.T) {
	o, client := newOrchestrator(t)
	ctx := context.Background()

	want := &domain.Container{
		Hostname:  "p-user-01",
		Status:    domain.StatusRunning,
		IPAddress: "240.1.2.1",
		BaseImage: "ubuntu",
		Profiles:  []string{"default"},
		CreatedAt: time.Date(2018, 3, 26, 12, 18, 26, 0, time.UTC),
	}
	client.EXPECT().Show(ctx, hostIP, container).Return(want, nil)

	got, err := o.Show(ctx, hostIP, container)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestShowNotFound(t *testing.T) {
	o, client := newOrchestrator(t)
	ctx := context.Background()

	client.EXPECT().Show(ctx, hostIP, container).Return(nil, domain.NewContainerNotFound(hostIP, container))

	_, err := o.Show(ctx, hostIP, container)
	assert.True(t, errors.Is(err, errors.NotFound))
	assert.False(t, domain.IsInfrastructureFailure(err))
	assert.False(t, domain.IsRemoteFailure(err))
}

func TestShowMissingRecord(t *testing.T) {
	o, client := newOrchestrator(t)
	ctx := context.Background()

	client.EXPECT().Show(ctx, hostIP, container).Return(nil, nil)

	_, err := o.Show(ctx, hostIP, container)
	assert.True(t, errors.Is(err, errors.NotFound))
}

func TestDestroy(t *testing.T) {
	o, client := newOrchestrator(t)
	ctx := context.Background()

	client.EXPECT().Destroy(ctx, "172.16.1.1", container).Return(domain.DestroyResult{Success: true}, nil)
	assert.NoError(t, o.Destroy(ctx, "172.16.1.1", container))
}

func TestDestroyPassesHostMessageThrough(t *testing.T) {
	o, client := newOrchestrator(t)
	ctx := context.Background()

	client.EXPECT().Destroy(ctx, "172.16.1.1", container).Return(domain.DestroyResult{Success: false, Error: "bad request"}, nil)
	err := o.Destroy(ctx, "172.16.1.1", container)

	var rf *domain.RemoteOperationFailure
	require.True(t, errors.As(err, &rf))
	assert.Equal(t, "bad request", rf.Message)
	assert.Equal(t, "bad request", err.Error())
}

func TestAdapterPanicIsInfrastructureFailure(t *testing.T) {
	o, client := newOrchestrator(t)
	ctx := context.Background()

	client.EXPECT().Destroy(ctx, hostIP, container).DoAndReturn(
		func(context.Context, string, string) (domain.DestroyResult, error) {
			panic("nil connection")
		})

	err := o.Destroy(ctx, hostIP, container)
	var inf *domain.InfrastructureFailure
	require.True(t, errors.As(err, &inf))
	assert.Contains(t, inf.Error(), "nil connection")
}

func TestCreateProfile(t *testing.T) {
	o, client := newOrchestrator(t)
	ctx := context.Background()
	profile := domain.Profile{Name: "small"}

	client.EXPECT().CreateProfile(ctx, hostIP, profile).Return(&domain.RemoteOperationFailure{Op: "create-profile", Message: "Profile \"small\" already exists"})
	err := o.CreateProfile(ctx, hostIP, profile)
	assert.True(t, domain.IsRemoteFailure(err))
	assert.Equal(t, "Profile \"small\" already exists", err.Error())
}

func TestNilLoggerFallsBackToStandard(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockLXDClient(ctrl)
	client.EXPECT().List(gomock.Any(), hostIP, "").Return([]domain.Container{}, nil)

	o := orchestrator.New(client, nil)
	_, err := o.List(context.Background(), hostIP, "")
	assert.NoError(t, err)
}

func TestNotFoundOutsideShowIsRemoteFailure(t *testing.T) {
	o, client := newOrchestrator(t)
	ctx := context.Background()

	client.EXPECT().Destroy(ctx, hostIP, container).Return(domain.DestroyResult{}, domain.NewContainerNotFound(hostIP, container))
	err := o.Destroy(ctx, hostIP, container)
	assert.False(t, errors.Is(err, errors.NotFound))
	var rf *domain.RemoteOperationFailure
	require.True(t, errors.As(err, &rf))
	assert.Equal(t, orchestrator.OpDestroy, rf.Op)

	client.EXPECT().Launch(ctx, hostIP, container, "").Return(domain.LaunchResult{}, domain.NewContainerNotFound(hostIP, container))
	err = o.Create(ctx, hostIP, container, "")
	assert.True(t, domain.IsRemoteFailure(err))
	assert.False(t, errors.Is(err, errors.NotFound))
}
