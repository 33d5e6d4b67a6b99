// Command stubapi is a local stand-in for the SendSculpt API. It accepts
// POST /api/v1/send, checks the payload the way the real service does and
// keeps accepted messages in memory. Nothing is delivered.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/sendsculpt/sendsculpt-go/pkg/config"
	"github.com/sendsculpt/sendsculpt-go/pkg/logx"
)

func main() {
	logx.SetDefaultLogger(logx.NewLogger(logx.LoadFromEnv()))
	if os.Getenv("LOG_LEVEL") == "" {
		logx.SetLevel(logx.LevelInfo)
	}

	cfg, err := config.Load()
	if err != nil {
		logx.Fatalf("Invalid configuration: %v", err)
	}

	if cfg.StubAPI.APIKey == "" {
		logx.Warn("STUBAPI_API_KEY is not set, any non-empty x-sendsculpt-key is accepted")
	}

	app := newApp(cfg.StubAPI.APIKey)
	app.Use(logger.New(logger.Config{
		Format:     "${time} | ${status} | ${latency} | ${method} ${path} | ${reqHeader:X-Request-ID}\n",
		TimeFormat: "2006-01-02 15:04:05",
		Output:     os.Stderr,
	}))

	startServer(app, cfg.StubAPI.Port)
}

// startServer listens in the background and blocks until a shutdown signal.
func startServer(app *fiber.App, port int) {
	go func() {
		logx.Infof("Stub SendSculpt API listening on :%d", port)
		logx.Infof("Point the SDK at it with SENDSCULPT_BASE_URL=http://localhost:%d/api/v1", port)

		if err := app.Listen(fmt.Sprintf(":%d", port)); err != nil {
			logx.Fatalf("Server error: %v", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	sig := <-sigChan
	logx.Infof("Received signal: %v", sig)

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logx.Errorf("Server forced to shutdown: %v", err)
	}
	logx.Info("Server exited")
}
