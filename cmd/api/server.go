package main

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"newsapi/docs"
	"newsapi/internal/config"
	handlers "newsapi/internal/http/handler"
	"newsapi/internal/http/middleware"
)

// newServer builds the Fiber app with the global middleware chain and every route.
// Metrics collectors are registered on reg.
func newServer(cfg *config.AppConfig, log *slog.Logger, reg prometheus.Registerer, deps handlers.Deps) (*fiber.App, error) {
	metrics, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		return nil, err
	}

	app := fiber.New(fiber.Config{
		AppName:      "newsapi",
		BodyLimit:    cfg.Upload.MaxBytes,
		ErrorHandler: handlers.ErrorHandler(log),
	})

	// Panics become 500 through the ErrorHandler
	app.Use(recover.New())
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	app.Use(otelfiber.Middleware(otelfiber.WithNext(func(c *fiber.Ctx) bool {
		return c.Path() == "/metrics"
	})))
	app.Use(metrics.Handler())
	// Logger renders chain errors, so metrics above record the final status
	app.Use(middleware.Logger(log))
	app.Use(cors.New(corsConfig(cfg.AllowedOrigins)))

	if gatherer, ok := reg.(prometheus.Gatherer); ok {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	handlers.RegisterRoutes(app, deps)
	return app, nil
}

// corsConfig allows every method and header for the configured origins.
// Credentials are only allowed with an explicit origin list; browsers reject them with "*".
func corsConfig(origins []string) cors.Config {
	wildcard := len(origins) == 0 || slices.Contains(origins, "*")
	if wildcard {
		return cors.Config{
			AllowOrigins: "*",
			AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
			AllowHeaders: "*",
		}
	}
	return cors.Config{
		AllowOrigins:     strings.Join(origins, ","),
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept,Authorization,X-Request-ID",
		AllowCredentials: true,
		ExposeHeaders:    middleware.RequestIDHeader,
	}
}
