package app

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"

	"mentor-match/internal/delivery/http/middleware"
	"mentor-match/internal/delivery/http/routes"
)

type App struct {
	Fiber *fiber.App
}

// Bootstrap assembles the fiber app: panic/error normalization first,
// then access logging and CORS, then the routes. The websocket hub's
// event loop is started here.
func Bootstrap(c *Container) (*App, error) {
	f := fiber.New(fiber.Config{AppName: c.Config.App.AppName})

	f.Use(middleware.NewErrorMiddleware(c.Logger).Middleware())
	f.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())
	f.Use(cors.New())

	if c.Hub != nil {
		go c.Hub.Run()
	}

	err := routes.Register(f, routes.Deps{
		Config: c.Config,
		DB:     c.DB,
		Cache:  c.Cache,
		Hub:    c.Hub,
		Logger: c.Logger,
	})
	if err != nil {
		return nil, err
	}

	return &App{Fiber: f}, nil
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
