package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/sendsculpt/sendsculpt-go/pkg/sendsculpt"
)

// newApp builds the stub server. An empty apiKey accepts any non-empty key.
func newApp(apiKey string) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "SendSculpt Stub API",
		DisableStartupMessage: true,
		ErrorHandler:          globalErrorHandler,
		BodyLimit:             25 * 1024 * 1024,
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Header:    sendsculpt.RequestIDHeader,
		Generator: uuid.NewString,
	}))

	h := &handlers{apiKey: apiKey, outbox: newOutbox()}

	app.Get("/health", h.health)

	api := app.Group("/api/v1", h.authenticate)
	api.Post("/send", h.send)
	api.Get("/messages", h.listMessages)
	api.Get("/messages/:id", h.getMessage)

	app.Use(notFoundHandler)
	return app
}
