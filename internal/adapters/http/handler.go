package http

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/melih/lighthouse-lxd/internal/core/domain"
	"github.com/melih/lighthouse-lxd/internal/core/services"
)

type ContainerHandler struct {
	service *services.ContainerService
	responder
}

func NewContainerHandler(service *services.ContainerService, redirectOnDestroy bool) *ContainerHandler {
	return &ContainerHandler{service: service, responder: responder{redirectOnDelete: redirectOnDestroy}}
}

type CreateContainerRequest struct {
	Container domain.ContainerRequest `json:"container"`
}

// CreateContainer handles POST /containers.
func (h *ContainerHandler) CreateContainer(c *fiber.Ctx) error {
	var req CreateContainerRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	return h.respond(c, h.service.CreateContainer(c.UserContext(), req.Container), "")
}

// ListContainers handles GET /containers?lxd_host_ipaddress=&lxd_hostname=.
func (h *ContainerHandler) ListContainers(c *fiber.Ctx) error {
	var req domain.ContainerRequest
	if err := c.QueryParser(&req); err != nil {
		return badBody(c)
	}
	return h.respond(c, h.service.ListContainers(c.UserContext(), req), "")
}

// ShowContainer handles GET /container?lxd_host_ipaddress=&container_hostname=.
func (h *ContainerHandler) ShowContainer(c *fiber.Ctx) error {
	var req domain.ContainerRequest
	if err := c.QueryParser(&req); err != nil {
		return badBody(c)
	}
	return h.respond(c, h.service.ShowContainer(c.UserContext(), req), "")
}

// DestroyContainer handles DELETE /containers?lxd_host_ipaddress=&container_hostname=
// and redirects to the host's container listing on success.
func (h *ContainerHandler) DestroyContainer(c *fiber.Ctx) error {
	var req domain.ContainerRequest
	if err := c.QueryParser(&req); err != nil {
		return badBody(c)
	}
	location := "/containers?lxd_host_ipaddress=" + url.QueryEscape(req.LXDHostIPAddress)
	return h.respond(c, h.service.DestroyContainer(c.UserContext(), req), location)
}
