package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/melih/lighthouse-lxd/internal/core/domain"
	"github.com/melih/lighthouse-lxd/internal/core/outcome"
	"github.com/melih/lighthouse-lxd/internal/core/services"
)

type HostHandler struct {
	service *services.HostService
	responder
}

func NewHostHandler(service *services.HostService) *HostHandler {
	return &HostHandler{service: service}
}

type RegisterHostRequest struct {
	ContainerHost domain.ContainerHost `json:"container_host"`
}

// RegisterHost handles POST /container-hosts.
func (h *HostHandler) RegisterHost(c *fiber.Ctx) error {
	var req RegisterHostRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	host := domain.ContainerHost{IPAddress: req.ContainerHost.IPAddress, Hostname: req.ContainerHost.Hostname}
	return h.respond(c, h.service.RegisterHost(c.UserContext(), host), "")
}

// ListHosts handles GET /container-hosts.
func (h *HostHandler) ListHosts(c *fiber.Ctx) error {
	return h.respond(c, h.service.ListHosts(c.UserContext()), "")
}

// ShowHost handles GET /container-hosts/:id.
func (h *HostHandler) ShowHost(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return h.respond(c, outcome.Outcome{
			Kind:    outcome.KindNotFound,
			Payload: outcome.NotFoundPayload{Error: "container host " + c.Params("id") + " not found"},
		}, "")
	}
	return h.respond(c, h.service.ShowHost(c.UserContext(), int64(id)), "")
}
