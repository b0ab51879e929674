// Package webapi assembles the Fiber application: middleware, swagger, the
// SPA static mount, and the BankAccount resource routes.
package webapi

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"

	"github.com/mycompany/bankapp/pkg/config"
	bankaccountsvc "github.com/mycompany/bankapp/pkg/service/bankaccount"
	bankaccountweb "github.com/mycompany/bankapp/webapi/bankaccount"
	"github.com/mycompany/bankapp/webapi/common"
)

// New builds the Fiber app with all middleware and routes registered.
func New(svc *bankaccountsvc.Service, cfg *config.App) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "bankapp",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			status := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			}
			return common.ErrorResponseJSON(c, status, "Internal Server Error", err.Error())
		},
	})

	app.Use(requestid.New())
	app.Use(recover.New())
	app.Use(limiter.New(limiter.Config{
		Max:        cfg.RateLimit.MaxRequests,
		Expiration: cfg.RateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			// Use X-Forwarded-For when behind a proxy, first IP in the chain.
			if forwardedFor := c.Get("X-Forwarded-For"); forwardedFor != "" {
				if commaIndex := strings.Index(forwardedFor, ","); commaIndex != -1 {
					return strings.TrimSpace(forwardedFor[:commaIndex])
				}
				return strings.TrimSpace(forwardedFor)
			}
			if realIP := c.Get("X-Real-IP"); realIP != "" {
				return realIP
			}
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ErrorResponseJSON(c, fiber.StatusTooManyRequests,
				"Too Many Requests", "rate limit exceeded")
		},
	}))

	app.Get("/swagger/*", swagger.New(swagger.Config{
		TryItOutEnabled: true,
	}))

	// Health check endpoint; kept off "/" so the static mount below can
	// serve the SPA entry point at the root path.
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("Bank API is running")
	})

	bankaccountweb.Routes(app, svc)

	// Compiled single-page application; index fallback keeps client-side
	// routing working on hard refresh.
	if cfg.Server.StaticDir != "" {
		app.Static("/", cfg.Server.StaticDir)
		app.Get("*", func(c *fiber.Ctx) error {
			return c.SendFile(cfg.Server.StaticDir + "/index.html")
		})
	}

	return app
}
