package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Containers *ContainerHandler
	Hosts      *HostHandler
	KeyPairs   *KeyPairHandler
	Profiles   *ProfileHandler
}

// NewApp builds the fiber application. registry may be nil, in which case
// /metrics is not mounted.
func NewApp(h Handlers, registry *prometheus.Registry, log logrus.FieldLogger) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use(requestLogger(log))

	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendString("pong")
	})

	hosts := app.Group("/container-hosts")
	hosts.Get("/", h.Hosts.ListHosts)
	hosts.Post("/", h.Hosts.RegisterHost)
	hosts.Get("/:id", h.Hosts.ShowHost)

	app.Post("/containers", h.Containers.CreateContainer)
	app.Get("/containers", h.Containers.ListContainers)
	app.Delete("/containers", h.Containers.DestroyContainer)
	app.Get("/container", h.Containers.ShowContainer)

	keyPairs := app.Group("/key_pairs")
	keyPairs.Get("/", h.KeyPairs.ListKeyPairs)
	keyPairs.Post("/", h.KeyPairs.CreateKeyPair)
	keyPairs.Get("/:id", h.KeyPairs.ShowKeyPair)
	keyPairs.Patch("/:id", h.KeyPairs.UpdateKeyPair)
	keyPairs.Delete("/:id", h.KeyPairs.DeleteKeyPair)

	app.Post("/profiles", h.Profiles.CreateProfile)

	if registry != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	}
	return app
}
