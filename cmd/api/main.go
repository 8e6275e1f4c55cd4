package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/juju/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/melih/lighthouse-lxd/internal/adapters/http"
	"github.com/melih/lighthouse-lxd/internal/adapters/keygen"
	"github.com/melih/lighthouse-lxd/internal/adapters/lxd"
	"github.com/melih/lighthouse-lxd/internal/adapters/sqlite"
	"github.com/melih/lighthouse-lxd/internal/config"
	"github.com/melih/lighthouse-lxd/internal/core/orchestrator"
	"github.com/melih/lighthouse-lxd/internal/core/services"
	"github.com/melih/lighthouse-lxd/internal/logging"
	"github.com/melih/lighthouse-lxd/internal/metrics"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logrus.WithError(err).Fatal("lighthouse exited")
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "lighthouse",
		Short:         "Manage LXD containers across many hosts",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCmd())
	return root
}

func newServeCmd() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to the YAML configuration file")
	return cmd
}

func serve(ctx context.Context, cfg config.Config) error {
	// 1. Logging
	log, err := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	if err != nil {
		return err
	}

	// 2. Infrastructure adapters
	store, err := sqlite.Open(ctx, cfg.Database.Path)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.WithError(err).Warn("closing database")
		}
	}()

	cert, key, serverCert, err := cfg.LXD.Credentials()
	if err != nil {
		return err
	}
	lxdAdapter := lxd.NewAdapter(lxd.Config{
		Port:               cfg.LXD.Port,
		ClientCert:         cert,
		ClientKey:          key,
		ServerCert:         serverCert,
		InsecureSkipVerify: cfg.LXD.InsecureSkipVerify,
		Timeout:            cfg.LXD.Timeout,
		DefaultImage:       cfg.LXD.DefaultImage,
		UserAgent:          "lighthouse",
	}, log)

	// 3. Core services
	m := metrics.New()
	orch := orchestrator.New(lxdAdapter, log)

	// 4. HTTP surface
	app := http.NewApp(http.Handlers{
		Containers: http.NewContainerHandler(services.NewContainerService(orch, m), cfg.HTTP.RedirectOnDestroy),
		Hosts:      http.NewHostHandler(services.NewHostService(store.Hosts(), m)),
		KeyPairs:   http.NewKeyPairHandler(services.NewKeyPairService(store.KeyPairs(), keygen.NewAdapter(), m), cfg.HTTP.RedirectOnDestroy),
		Profiles:   http.NewProfileHandler(services.NewProfileService(orch, m)),
	}, m.Registry(), log)

	listenErr := make(chan error, 1)
	go func() {
		log.WithField("listen", cfg.HTTP.Listen).Info("server starting")
		listenErr <- app.Listen(cfg.HTTP.Listen)
	}()

	select {
	case err := <-listenErr:
		return errors.Annotate(err, "server failed")
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return errors.Trace(app.ShutdownWithContext(shutdownCtx))
}
