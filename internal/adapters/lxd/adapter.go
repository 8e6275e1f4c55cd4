package lxd

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	lxdclient "github.com/canonical/lxd/client"
	"github.com/canonical/lxd/shared/api"
	"github.com/juju/errors"
	"github.com/sirupsen/logrus"

	"github.com/melih/lighthouse-lxd/internal/core/domain"
)

// Config describes how to reach LXD hosts. Certificates and keys are PEM
// contents, not paths.
type Config struct {
	Port               int
	ClientCert         string
	ClientKey          string
	ServerCert         string
	InsecureSkipVerify bool
	Timeout            time.Duration
	DefaultImage       string
	UserAgent          string
}

// Connector opens a connection to the LXD API at url.
type Connector func(url string, args *lxdclient.ConnectionArgs) (lxdclient.InstanceServer, error)

// Adapter implements ports.LXDClient on top of the LXD Go client. It keeps
// one connection per host IP.
type Adapter struct {
	cfg     Config
	connect Connector
	log     logrus.FieldLogger

	mu      sync.Mutex
	servers map[string]lxdclient.InstanceServer
}

// NewAdapter creates a new LXD adapter instance.
func NewAdapter(cfg Config, log logrus.FieldLogger) *Adapter {
	return NewAdapterWithConnector(cfg, func(url string, args *lxdclient.ConnectionArgs) (lxdclient.InstanceServer, error) {
		return lxdclient.ConnectLXD(url, args)
	}, log)
}

// NewAdapterWithConnector is NewAdapter with a custom way of connecting.
func NewAdapterWithConnector(cfg Config, connect Connector, log logrus.FieldLogger) *Adapter {
	if cfg.Port == 0 {
		cfg.Port = 8443
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Adapter{
		cfg:     cfg,
		connect: connect,
		log:     log.WithField("component", "lxd"),
		servers: make(map[string]lxdclient.InstanceServer),
	}
}

// server returns the cached connection for hostIP, connecting on first use.
func (a *Adapter) server(hostIP string) (lxdclient.InstanceServer, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if s, ok := a.servers[hostIP]; ok {
		return s, nil
	}

	u := "https://" + net.JoinHostPort(hostIP, strconv.Itoa(a.cfg.Port))
	s, err := a.connect(u, &lxdclient.ConnectionArgs{
		TLSClientCert:      a.cfg.ClientCert,
		TLSClientKey:       a.cfg.ClientKey,
		TLSServerCert:      a.cfg.ServerCert,
		InsecureSkipVerify: a.cfg.InsecureSkipVerify,
		UserAgent:          a.cfg.UserAgent,
		HTTPClient:         &http.Client{Timeout: a.cfg.Timeout},
		SkipGetServer:      true,
	})
	if err != nil {
		return nil, errors.Annotatef(err, "connecting to %s", u)
	}
	a.log.WithField("host", hostIP).Debug("connected to lxd host")
	a.servers[hostIP] = s
	return s, nil
}

// forget drops a cached connection after a transport failure so the next
// request reconnects.
func (a *Adapter) forget(hostIP string, err error) {
	if !isTransportError(err) {
		return
	}
	a.mu.Lock()
	delete(a.servers, hostIP)
	a.mu.Unlock()
}

func (a *Adapter) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, a.cfg.Timeout)
}

// Launch creates the container from image and starts it.
func (a *Adapter) Launch(ctx context.Context, hostIP, containerHostname, image string) (res domain.LaunchResult, err error) {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()
	defer func() { a.forget(hostIP, err) }()

	if err := ctx.Err(); err != nil {
		return res, err
	}
	server, err := a.server(hostIP)
	if err != nil {
		return res, err
	}
	if image == "" {
		image = a.cfg.DefaultImage
	}

	op, err := server.CreateInstance(api.InstancesPost{
		Name:   containerHostname,
		Type:   api.InstanceTypeContainer,
		Source: imageSource(image),
	})
	if err == nil {
		err = op.WaitContext(ctx)
	}
	if err != nil {
		return hostRefusal(err, func(msg string) domain.LaunchResult {
			return domain.LaunchResult{Error: msg}
		})
	}

	op, err = server.UpdateInstanceState(containerHostname, api.InstanceStatePut{Action: "start", Timeout: -1}, "")
	if err == nil {
		err = op.WaitContext(ctx)
	}
	if err != nil {
		return hostRefusal(err, func(msg string) domain.LaunchResult {
			return domain.LaunchResult{Error: "container created but failed to start: " + msg}
		})
	}
	return domain.LaunchResult{Success: true}, nil
}

// List returns the containers of hostIP in the order the host sends them.
// On a cluster, hostName restricts the result to that member.
func (a *Adapter) List(ctx context.Context, hostIP, hostName string) (containers []domain.Container, err error) {
	defer func() { a.forget(hostIP, err) }()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	server, err := a.server(hostIP)
	if err != nil {
		return nil, err
	}

	instances, err := server.GetInstancesFull(api.InstanceTypeContainer)
	if err != nil {
		return nil, remoteFailure("list", err)
	}

	// Connections skip the initial GetServer, so cluster membership is
	// only looked up when a member filter is asked for.
	clustered := false
	if hostName != "" {
		info, _, err := server.GetServer()
		if err != nil {
			return nil, remoteFailure("list", err)
		}
		clustered = info.Environment.ServerClustered
	}

	filter := hostName != "" && clustered
	containers = make([]domain.Container, 0, len(instances))
	for _, inst := range instances {
		if filter && inst.Location != hostName {
			continue
		}
		containers = append(containers, toContainer(inst))
	}
	return containers, nil
}

// Show returns one container, or a NotFound error.
func (a *Adapter) Show(ctx context.Context, hostIP, containerHostname string) (c *domain.Container, err error) {
	defer func() { a.forget(hostIP, err) }()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	server, err := a.server(hostIP)
	if err != nil {
		return nil, err
	}

	inst, _, err := server.GetInstanceFull(containerHostname)
	if err != nil {
		if statusCode(err) == http.StatusNotFound {
			return nil, domain.NewContainerNotFound(hostIP, containerHostname)
		}
		return nil, remoteFailure("show", err)
	}
	container := toContainer(*inst)
	return &container, nil
}

// Destroy stops the container if needed and deletes it. Refusals by the host
// come back as Success false with the host's message.
func (a *Adapter) Destroy(ctx context.Context, hostIP, containerHostname string) (res domain.DestroyResult, err error) {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()
	defer func() { a.forget(hostIP, err) }()

	if err := ctx.Err(); err != nil {
		return res, err
	}
	server, err := a.server(hostIP)
	if err != nil {
		return res, err
	}

	refused := func(msg string) domain.DestroyResult { return domain.DestroyResult{Error: msg} }

	state, etag, err := server.GetInstanceState(containerHostname)
	if err != nil {
		return hostRefusal(err, refused)
	}
	if state.StatusCode != api.Stopped {
		op, err := server.UpdateInstanceState(containerHostname, api.InstanceStatePut{Action: "stop", Timeout: -1, Force: true}, etag)
		if err == nil {
			err = op.WaitContext(ctx)
		}
		if err != nil {
			return hostRefusal(err, refused)
		}
	}

	op, err := server.DeleteInstance(containerHostname)
	if err == nil {
		err = op.WaitContext(ctx)
	}
	if err != nil {
		return hostRefusal(err, refused)
	}
	return domain.DestroyResult{Success: true}, nil
}

// CreateProfile creates profile on hostIP.
func (a *Adapter) CreateProfile(ctx context.Context, hostIP string, profile domain.Profile) (err error) {
	defer func() { a.forget(hostIP, err) }()

	if err := ctx.Err(); err != nil {
		return err
	}
	server, err := a.server(hostIP)
	if err != nil {
		return err
	}

	err = server.CreateProfile(api.ProfilesPost{
		Name: profile.Name,
		ProfilePut: api.ProfilePut{
			Config:      profile.Config,
			Description: profile.Description,
		},
	})
	if err != nil {
		return remoteFailure("create-profile", err)
	}
	return nil
}

// hostRefusal splits err into a transport error, returned as is, or a
// refusal by the host, returned as a failed result carrying its message.
func hostRefusal[R any](err error, refused func(msg string) R) (R, error) {
	if isTransportError(err) {
		var zero R
		return zero, err
	}
	return refused(err.Error()), nil
}

// remoteFailure wraps errors the host answered with; transport errors are
// returned untouched.
func remoteFailure(op string, err error) error {
	if isTransportError(err) {
		return err
	}
	return &domain.RemoteOperationFailure{Op: op, Message: err.Error()}
}

func statusCode(err error) int {
	var statusErr api.StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Status()
	}
	return 0
}

// isTransportError reports whether err means the host could not be reached
// or did not answer in time, as opposed to answering with an error.
func isTransportError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

type imageRemote struct {
	server   string
	protocol string
}

// The default remotes of the lxc command line client.
var imageRemotes = map[string]imageRemote{
	"ubuntu":       {server: "https://cloud-images.ubuntu.com/releases", protocol: "simplestreams"},
	"ubuntu-daily": {server: "https://cloud-images.ubuntu.com/daily", protocol: "simplestreams"},
	"images":       {server: "https://images.linuxcontainers.org", protocol: "simplestreams"},
}

// imageSource turns "remote:alias" into a pull from a known remote and
// anything else into a local alias.
func imageSource(image string) api.InstanceSource {
	if remote, alias, ok := strings.Cut(image, ":"); ok {
		if r, known := imageRemotes[remote]; known {
			return api.InstanceSource{
				Type:     "image",
				Mode:     "pull",
				Server:   r.server,
				Protocol: r.protocol,
				Alias:    alias,
			}
		}
	}
	return api.InstanceSource{Type: "image", Alias: image}
}

func toContainer(inst api.InstanceFull) domain.Container {
	c := domain.Container{
		Hostname:  inst.Name,
		BaseImage: baseImage(inst.Config),
		Status:    domain.ParseContainerStatus(inst.Status),
		Profiles:  append([]string{}, inst.Profiles...),
		CreatedAt: inst.CreatedAt,
	}
	if inst.State != nil {
		c.IPAddress = globalIPv4(inst.State.Network)
	}
	return c
}

func baseImage(config map[string]string) string {
	if d := config["image.description"]; d != "" {
		return d
	}
	if osName := config["image.os"]; osName != "" {
		return strings.TrimSpace(fmt.Sprintf("%s %s", osName, config["image.release"]))
	}
	return config["volatile.base_image"]
}

// globalIPv4 returns the first global IPv4 address, scanning interfaces in
// name order and skipping loopback.
func globalIPv4(networks map[string]api.InstanceStateNetwork) string {
	names := make([]string, 0, len(networks))
	for name := range networks {
		if name != "lo" {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	for _, name := range names {
		for _, addr := range networks[name].Addresses {
			if addr.Family == "inet" && addr.Scope == "global" {
				return addr.Address
			}
		}
	}
	return ""
}
