package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/melih/lighthouse-lxd/internal/core/outcome"
)

// responder writes outcomes with the status code convention of the API.
type responder struct {
	redirectOnDelete bool
}

var failureStatus = map[outcome.Kind]int{
	outcome.KindBadRequest:            fiber.StatusBadRequest,
	outcome.KindNotFound:              fiber.StatusNotFound,
	outcome.KindRemoteFailure:         fiber.StatusInternalServerError,
	outcome.KindInfrastructureFailure: fiber.StatusBadGateway,
}

// respond writes out. A successful delete redirects to location when
// redirects are enabled and location is set.
func (r responder) respond(c *fiber.Ctx, out outcome.Outcome, location string) error {
	switch out.Kind {
	case outcome.KindOK:
		return c.Status(fiber.StatusOK).JSON(out.Payload)
	case outcome.KindCreated:
		if out.Payload == nil {
			return c.SendStatus(fiber.StatusCreated)
		}
		return c.Status(fiber.StatusCreated).JSON(out.Payload)
	case outcome.KindDeleted:
		if r.redirectOnDelete && location != "" {
			return c.Redirect(location, fiber.StatusFound)
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": "true"})
	}

	status, ok := failureStatus[out.Kind]
	if !ok {
		status = fiber.StatusBadGateway
	}
	return c.Status(status).JSON(out.Payload)
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(outcome.ValidationPayload{Errors: "Invalid request body"})
}
