package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"roll-checker/core/loader"
	"roll-checker/core/logger"
	"roll-checker/core/middleware/auth"
	"roll-checker/core/middleware/rayid"
	"roll-checker/feature/audit"
	"roll-checker/feature/history"
	"roll-checker/feature/integrity"
	"roll-checker/feature/settings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "roll-checker/docs/swagger"
)

// @title Roll Checker API
// @version 1.0
// @description API for auditing roll submissions against an expected range.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the roll-checker API server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime()
		if err != nil {
			return err
		}
		defer rt.close()
		zap.ReplaceGlobals(rt.logger)
		logg := rt.logger

		app := newApp(rt)

		go func() {
			logg.Info("Starting server", zap.String("port", rt.cfg.Server.Port))
			if err := app.Listen(rt.cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")

		ctx, cancel := context.WithTimeout(context.Background(), rt.cfg.Server.ShutdownTimeout())
		defer cancel()
		return app.ShutdownWithContext(ctx)
	},
}

// newApp builds the Fiber application with every feature registered and loaded.
func newApp(rt *runtime) *fiber.App {
	logg := rt.logger

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		BodyLimit:             rt.cfg.Server.BodyLimit(),
		ReadTimeout:           2 * time.Minute,
	})

	// History is registered first so its table is migrated before the audit feature records into it.
	historyFeature := history.NewFeature(rt.db, logg)
	auditSvc := rt.auditService(historyFeature.Repository())

	mgr := loader.NewManager(logg)
	mgr.Register(historyFeature)
	// Without an API key nobody may make the server read its disk or fetch URLs.
	mgr.Register(audit.NewFeature(auditSvc, rt.cfg.Server.ApiKey != ""))
	mgr.Register(settings.NewFeature(rt.settings, logg))
	mgr.Register(integrity.NewFeature(rt.integrityService()))

	// RayID must be first so every later log line carries it.
	app.Use(rayid.New())

	app.Use(func(c *fiber.Ctx) error {
		l := logger.WithRayID(logg, c)
		start := time.Now()
		err := c.Next()
		if err != nil {
			l.Error("Request error", zap.Error(err))
		}
		l.Info("Request completed",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("duration", time.Since(start)),
		)
		return err
	})

	// Swagger documentation stays public.
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Use(auth.New(rt.cfg.Auth()))

	if err := mgr.LoadAll(app); err != nil {
		logg.Fatal("Failed to load features", zap.Error(err))
	}

	return app
}

func init() {
	RootCmd.AddCommand(startCmd)
}
