package routes

import (
	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"mentor-match/internal/config"
	"mentor-match/internal/database"
	v1 "mentor-match/internal/delivery/http/routes/v1"
	"mentor-match/internal/pkg/response"
	"mentor-match/internal/usecase"
	"mentor-match/internal/ws"
)

type Deps struct {
	Config config.Config
	DB     database.DB
	Cache  usecase.SearchCache
	Hub    *ws.Hub
	Logger *zap.Logger
}

func Register(app *fiber.App, deps Deps) error {
	if app == nil {
		return nil
	}

	app.Get("/health", func(c fiber.Ctx) error {
		return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
	})

	if deps.Hub != nil {
		app.Get("/ws", ws.NewHandler(deps.Hub, deps.Logger).HandleEvents)
	}

	api := app.Group("/api")
	return v1.Register(api.Group("/v1"), deps.Config, deps.DB, deps.Cache, deps.Hub)
}
