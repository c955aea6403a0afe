package app

import (
	"fmt"
	"strings"

	"alumni-connect/internal/config"
	"alumni-connect/internal/delivery/http/middleware"
	"alumni-connect/internal/delivery/http/routes"
	"alumni-connect/internal/ws"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
)

type App struct {
	Fiber *fiber.App
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{AppName: c.Config.App.AppName})

	registerGlobalMiddleware(f, c)

	notifier := ws.NewNotifier(c.Hub)
	wsHandler := ws.NewHandler(c.Hub, c.Logger)
	registry := routes.NewRegistry(c.Config, c.DB, c.Cache, notifier, wsHandler)
	registry.Register(f)

	return &App{Fiber: f}
}

// Bootstrap builds the container and HTTP app and starts the websocket hub.
// The returned cleanup closes the database pool.
func Bootstrap(cfg config.Config) (*App, func() error, error) {
	container, err := NewContainer(cfg, nil)
	if err != nil {
		return nil, nil, err
	}

	go container.Hub.Run()

	app := New(container)
	return app, container.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins: c.Config.CORS.AllowOrigins,
	}))
	app.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())
	app.Use(middleware.NewErrorMiddleware().Middleware())
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
