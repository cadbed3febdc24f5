package handler

import (
	"github.com/gofiber/fiber/v3"

	"mentor-match/internal/delivery/http/dto"
	"mentor-match/internal/delivery/http/middleware"
	"mentor-match/internal/pkg/response"
	"mentor-match/internal/usecase"
)

// MetaHandler serves the version and collection overview endpoints.
type MetaHandler struct {
	version string
	uc      usecase.CollectionUsecase
}

func NewMetaHandler(version string, uc usecase.CollectionUsecase) *MetaHandler {
	return &MetaHandler{version: version, uc: uc}
}

func (h *MetaHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/version", h.Version)
	r.Get("/collections", h.Collections)
}

func (h *MetaHandler) Version(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.VersionResponse{Version: h.version})
}

func (h *MetaHandler) Collections(c fiber.Ctx) error {
	info, err := h.uc.Collections(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.CollectionsResponse{Result: info})
}
