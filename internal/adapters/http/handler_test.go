package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/juju/errors"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	lighthttp "github.com/melih/lighthouse-lxd/internal/adapters/http"
	"github.com/melih/lighthouse-lxd/internal/core/domain"
	"github.com/melih/lighthouse-lxd/internal/core/orchestrator"
	"github.com/melih/lighthouse-lxd/internal/core/ports/mocks"
	"github.com/melih/lighthouse-lxd/internal/core/services"
	"github.com/melih/lighthouse-lxd/internal/metrics"
)

type HandlerSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	client   *mocks.MockLXDClient
	hosts    *mocks.MockHostRepository
	keyPairs *mocks.MockKeyPairRepository
	keygen   *mocks.MockKeyGenerator
	app      *fiber.App
}

func TestHandlers(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.client = mocks.NewMockLXDClient(s.ctrl)
	s.hosts = mocks.NewMockHostRepository(s.ctrl)
	s.keyPairs = mocks.NewMockKeyPairRepository(s.ctrl)
	s.keygen = mocks.NewMockKeyGenerator(s.ctrl)

	logger, _ := test.NewNullLogger()
	m := metrics.New()
	orch := orchestrator.New(s.client, logger)

	s.app = lighthttp.NewApp(lighthttp.Handlers{
		Containers: lighthttp.NewContainerHandler(services.NewContainerService(orch, m), true),
		Hosts:      lighthttp.NewHostHandler(services.NewHostService(s.hosts, m)),
		KeyPairs:   lighthttp.NewKeyPairHandler(services.NewKeyPairService(s.keyPairs, s.keygen, m), true),
		Profiles:   lighthttp.NewProfileHandler(services.NewProfileService(orch, m)),
	}, m.Registry(), logger)
}

func (s *HandlerSuite) do(method, target, body string) (*http.Response, map[string]any) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := s.app.Test(req, -1)
	s.Require().NoError(err)

	raw, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	var decoded map[string]any
	if len(raw) > 0 && raw[0] == '{' {
		s.Require().NoError(json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

func (s *HandlerSuite) TestPing() {
	resp, err := s.app.Test(httptest.NewRequest(http.MethodGet, "/ping", nil), -1)
	s.Require().NoError(err)
	s.Equal(http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	s.Equal("pong", string(body))
	s.NotEmpty(resp.Header.Get("X-Request-Id"))
}

func (s *HandlerSuite) TestCreateContainer() {
	s.client.EXPECT().
		Launch(gomock.Any(), "172.16.7.2", "p-user-service-01", "ubuntu:22.04").
		Return(domain.LaunchResult{Success: true}, nil)

	resp, _ := s.do(http.MethodPost, "/containers",
		`{"container":{"lxd_host_ipaddress":"172.16.7.2","container_hostname":"p-user-service-01","image":"ubuntu:22.04"}}`)
	s.Equal(http.StatusCreated, resp.StatusCode)
}

func (s *HandlerSuite) TestCreateContainerValidation() {
	cases := []struct {
		body string
		want string
	}{
		{`{"container":{"container_hostname":"p-user-service-01"}}`, "Lxd host ipaddress can't be blank"},
		{`{"container":{"lxd_host_ipaddress":"172.16.7.2"}}`, "Container hostname can't be blank"},
		{`{"container":{}}`, "Container hostname can't be blank,Lxd host ipaddress can't be blank"},
	}
	for _, tc := range cases {
		resp, body := s.do(http.MethodPost, "/containers", tc.body)
		s.Equal(http.StatusBadRequest, resp.StatusCode)
		s.Equal(tc.want, body["errors"])
	}
}

func (s *HandlerSuite) TestCreateContainerMalformedBody() {
	resp, body := s.do(http.MethodPost, "/containers", `{"container":`)
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	s.Equal("Invalid request body", body["errors"])
}

func (s *HandlerSuite) TestCreateContainerRefused() {
	s.client.EXPECT().
		Launch(gomock.Any(), "172.16.7.2", "p-user-service-01", "").
		Return(domain.LaunchResult{Success: false, Error: "image not found"}, nil)

	resp, body := s.do(http.MethodPost, "/containers",
		`{"container":{"lxd_host_ipaddress":"172.16.7.2","container_hostname":"p-user-service-01"}}`)
	s.Equal(http.StatusInternalServerError, resp.StatusCode)
	s.Equal("false", body["success"])
	s.Equal("image not found", body["error"])
}

func (s *HandlerSuite) TestDestroyContainerRedirects() {
	s.client.EXPECT().
		Destroy(gomock.Any(), "172.16.1.1", "p-user-service-01").
		Return(domain.DestroyResult{Success: true}, nil)

	resp, _ := s.do(http.MethodDelete, "/containers?lxd_host_ipaddress=172.16.1.1&container_hostname=p-user-service-01", "")
	s.Equal(http.StatusFound, resp.StatusCode)
	s.Equal("/containers?lxd_host_ipaddress=172.16.1.1", resp.Header.Get("Location"))
}

func (s *HandlerSuite) TestDestroyContainerValidation() {
	cases := []struct {
		query string
		want  string
	}{
		{"container_hostname=p-user-service-01", "Lxd host ipaddress can't be blank"},
		{"lxd_host_ipaddress=172.16.1.1", "Container hostname can't be blank"},
		{"", "Container hostname can't be blank,Lxd host ipaddress can't be blank"},
	}
	for _, tc := range cases {
		resp, body := s.do(http.MethodDelete, "/containers?"+tc.query, "")
		s.Equal(http.StatusBadRequest, resp.StatusCode)
		s.Equal(tc.want, body["errors"])
	}
}

func (s *HandlerSuite) TestDestroyContainerRefused() {
	s.client.EXPECT().
		Destroy(gomock.Any(), "172.16.1.1", "p-user-service-01").
		Return(domain.DestroyResult{Success: false, Error: "bad request"}, nil)

	resp, body := s.do(http.MethodDelete, "/containers?lxd_host_ipaddress=172.16.1.1&container_hostname=p-user-service-01", "")
	s.Equal(http.StatusInternalServerError, resp.StatusCode)
	s.Equal(map[string]any{"success": "false", "error": "bad request"}, body)
}

func (s *HandlerSuite) TestDestroyContainerHostUnreachable() {
	s.client.EXPECT().
		Destroy(gomock.Any(), "172.16.1.1", "p-user-service-01").
		Return(domain.DestroyResult{}, &domain.InfrastructureFailure{Op: "destroy", Cause: errors.New("connection refused")})

	resp, body := s.do(http.MethodDelete, "/containers?lxd_host_ipaddress=172.16.1.1&container_hostname=p-user-service-01", "")
	s.Equal(http.StatusBadGateway, resp.StatusCode)
	s.Equal("false", body["success"])
}

func (s *HandlerSuite) TestListContainers() {
	s.client.EXPECT().
		List(gomock.Any(), "172.16.7.2", "p-lxc-01").
		Return([]domain.Container{{Hostname: "p-user-01"}, {Hostname: "p-user-02"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/containers?lxd_host_ipaddress=172.16.7.2&lxd_hostname=p-lxc-01", nil)
	resp, err := s.app.Test(req, -1)
	s.Require().NoError(err)
	s.Equal(http.StatusOK, resp.StatusCode)

	var containers []domain.Container
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&containers))
	s.Len(containers, 2)
	s.Equal("p-user-02", containers[1].Hostname)
}

func (s *HandlerSuite) TestShowContainer() {
	s.client.EXPECT().
		Show(gomock.Any(), "172.16.7.2", "p-user-01").
		Return(&domain.Container{Hostname: "p-user-01", Status: domain.StatusRunning}, nil)

	resp, body := s.do(http.MethodGet, "/container?lxd_host_ipaddress=172.16.7.2&container_hostname=p-user-01", "")
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal("p-user-01", body["container_hostname"])
	s.Equal("Running", body["status"])
}

func (s *HandlerSuite) TestShowContainerNotFound() {
	s.client.EXPECT().
		Show(gomock.Any(), "172.16.7.2", "ghost").
		Return(nil, domain.NewContainerNotFound("172.16.7.2", "ghost"))

	resp, body := s.do(http.MethodGet, "/container?lxd_host_ipaddress=172.16.7.2&container_hostname=ghost", "")
	s.Equal(http.StatusNotFound, resp.StatusCode)
	s.Contains(body["error"], "ghost")
}

func (s *HandlerSuite) TestRegisterHostDuplicate() {
	s.hosts.EXPECT().
		Create(gomock.Any(), domain.ContainerHost{IPAddress: "172.16.7.2", Hostname: "p-lxc-01"}).
		Return(domain.ContainerHost{}, errors.AlreadyExistsf("container host 172.16.7.2"))

	resp, body := s.do(http.MethodPost, "/container-hosts", `{"container_host":{"ipaddress":"172.16.7.2","hostname":"p-lxc-01"}}`)
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	s.Equal("Ipaddress has already been taken", body["errors"])
}

func (s *HandlerSuite) TestRegisterHost() {
	s.hosts.EXPECT().
		Create(gomock.Any(), domain.ContainerHost{IPAddress: "172.16.7.2", Hostname: "p-lxc-01"}).
		Return(domain.ContainerHost{ID: 7, IPAddress: "172.16.7.2", Hostname: "p-lxc-01"}, nil)

	resp, body := s.do(http.MethodPost, "/container-hosts", `{"container_host":{"ipaddress":"172.16.7.2","hostname":"p-lxc-01"}}`)
	s.Equal(http.StatusCreated, resp.StatusCode)
	s.Equal(float64(7), body["id"])
}

func (s *HandlerSuite) TestShowHostWithBadID() {
	resp, _ := s.do(http.MethodGet, "/container-hosts/abc", "")
	s.Equal(http.StatusNotFound, resp.StatusCode)
}

func (s *HandlerSuite) TestDeleteKeyPairRedirects() {
	s.keyPairs.EXPECT().Delete(gomock.Any(), "kp-1").Return(nil)

	resp, _ := s.do(http.MethodDelete, "/key_pairs/kp-1", "")
	s.Equal(http.StatusFound, resp.StatusCode)
	s.Equal("/key_pairs", resp.Header.Get("Location"))
}

func (s *HandlerSuite) TestShowKeyPairNotFound() {
	s.keyPairs.EXPECT().Get(gomock.Any(), "missing").Return(domain.KeyPair{}, errors.NotFoundf("key pair %q", "missing"))

	resp, _ := s.do(http.MethodGet, "/key_pairs/missing", "")
	s.Equal(http.StatusNotFound, resp.StatusCode)
}

func (s *HandlerSuite) TestCreateProfileValidation() {
	resp, body := s.do(http.MethodPost, "/profiles", `{"profile":{"name":"small"}}`)
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	s.Equal("Lxd host ipaddress can't be blank", body["errors"])
}

func (s *HandlerSuite) TestMetricsExposesOutcomes() {
	s.client.EXPECT().List(gomock.Any(), "172.16.7.2", "").Return(nil, nil)
	resp, _ := s.do(http.MethodGet, "/containers?lxd_host_ipaddress=172.16.7.2", "")
	s.Equal(http.StatusOK, resp.StatusCode)

	resp, err := s.app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil), -1)
	s.Require().NoError(err)
	s.Equal(http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	s.Contains(string(body), `lighthouse_operation_outcomes_total{operation="list_containers",outcome="ok"} 1`)
}
