package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/melih/lighthouse-lxd/internal/core/domain"
	"github.com/melih/lighthouse-lxd/internal/core/services"
)

type KeyPairHandler struct {
	service *services.KeyPairService
	responder
}

func NewKeyPairHandler(service *services.KeyPairService, redirectOnDestroy bool) *KeyPairHandler {
	return &KeyPairHandler{service: service, responder: responder{redirectOnDelete: redirectOnDestroy}}
}

type KeyPairRequest struct {
	KeyPair struct {
		Name      string `json:"name"`
		PublicKey string `json:"public_key"`
	} `json:"key_pair"`
}

func (r KeyPairRequest) keyPair() domain.KeyPair {
	return domain.KeyPair{Name: r.KeyPair.Name, PublicKey: r.KeyPair.PublicKey}
}

// CreateKeyPair handles POST /key_pairs.
func (h *KeyPairHandler) CreateKeyPair(c *fiber.Ctx) error {
	var req KeyPairRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	return h.respond(c, h.service.CreateKeyPair(c.UserContext(), req.keyPair()), "")
}

// ListKeyPairs handles GET /key_pairs.
func (h *KeyPairHandler) ListKeyPairs(c *fiber.Ctx) error {
	return h.respond(c, h.service.ListKeyPairs(c.UserContext()), "")
}

// ShowKeyPair handles GET /key_pairs/:id.
func (h *KeyPairHandler) ShowKeyPair(c *fiber.Ctx) error {
	return h.respond(c, h.service.ShowKeyPair(c.UserContext(), c.Params("id")), "")
}

// UpdateKeyPair handles PATCH /key_pairs/:id.
func (h *KeyPairHandler) UpdateKeyPair(c *fiber.Ctx) error {
	var req KeyPairRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	return h.respond(c, h.service.UpdateKeyPair(c.UserContext(), c.Params("id"), req.keyPair()), "")
}

// DeleteKeyPair handles DELETE /key_pairs/:id.
func (h *KeyPairHandler) DeleteKeyPair(c *fiber.Ctx) error {
	return h.respond(c, h.service.DeleteKeyPair(c.UserContext(), c.Params("id")), "/key_pairs")
}
