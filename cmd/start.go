package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"device-sync/core/loader"
	"device-sync/core/logger"
	"device-sync/core/metrics"
	"device-sync/core/middleware/auth"
	"device-sync/core/middleware/rayid"

	"device-sync/feature/devicesync"
	"device-sync/feature/integrity"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "device-sync/docs/swagger"
)

// @title Device Sync API
// @version 1.0
// @description API for synchronizing device components with their device type templates.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the device sync server",
	Long:  `Starts the HTTP server, ensures the exemption tags and initializes all enabled features.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap()
		if err != nil {
			return err
		}
		defer rt.close()
		zap.ReplaceGlobals(rt.log)
		logg := rt.log

		registry := prometheus.NewRegistry()
		svc := rt.service(metrics.New(registry))

		// Tags must exist before the first scan
		if rt.cfg.Sync.EnsureTagsOnStart {
			if _, err := svc.EnsureTags(context.Background()); err != nil {
				return fmt.Errorf("failed to ensure exemption tags: %w", err)
			}
		}

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		mgr := loader.NewManager()
		mgr.Register(devicesync.NewFeature(svc))
		mgr.Register(integrity.NewFeature(rt.store, rt.cfg.Storage, logg, rt.db))

		// RayID first so every later log line carries it
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// Public endpoints
		if rt.cfg.Server.Swagger {
			app.Get("/swagger/*", swagger.HandlerDefault)
		}
		if rt.cfg.Server.Metrics {
			app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler(registry)))
		}

		if rt.cfg.Server.AuthEnabled() {
			app.Use(auth.New(auth.Config{ApiKey: rt.cfg.Server.ApiKey}))
		} else {
			logg.Warn("API key not set, requests are not authenticated")
		}

		loaded, err := mgr.LoadAll(app)
		if err != nil {
			return fmt.Errorf("failed to load features: %w", err)
		}
		logg.Info("Features loaded", zap.Strings("features", loaded))

		errCh := make(chan error, 1)
		go func() {
			logg.Info("Starting server", zap.String("address", rt.cfg.Server.Address()))
			errCh <- app.Listen(rt.cfg.Server.Address())
		}()

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		select {
		case err := <-errCh:
			return fmt.Errorf("server failed: %w", err)
		case <-sig:
		}

		logg.Info("Shutting down server...")
		return app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
