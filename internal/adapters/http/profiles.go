package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/melih/lighthouse-lxd/internal/core/domain"
	"github.com/melih/lighthouse-lxd/internal/core/services"
)

type ProfileHandler struct {
	service *services.ProfileService
	responder
}

func NewProfileHandler(service *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

type CreateProfileRequest struct {
	LXDHostIPAddress string         `json:"lxd_host_ipaddress"`
	Profile          domain.Profile `json:"profile"`
}

// CreateProfile handles POST /profiles.
func (h *ProfileHandler) CreateProfile(c *fiber.Ctx) error {
	var req CreateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	return h.respond(c, h.service.CreateProfile(c.UserContext(), domain.ProfileRequest{
		LXDHostIPAddress: req.LXDHostIPAddress,
		Profile:          req.Profile,
	}), "")
}
