package handler

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v3"

	"mentor-match/internal/delivery/http/dto"
	"mentor-match/internal/delivery/http/middleware"
	"mentor-match/internal/pkg/response"
	"mentor-match/internal/usecase"
)

type FinancialAidHandler struct {
	uc usecase.FinancialAidUsecase
}

func NewFinancialAidHandler(uc usecase.FinancialAidUsecase) *FinancialAidHandler {
	return &FinancialAidHandler{uc: uc}
}

func (h *FinancialAidHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/financial_aid/:profile_id", h.Estimate)
}

func (h *FinancialAidHandler) Estimate(c fiber.Ctx) error {
	profileID := strings.TrimSpace(c.Params("profile_id"))

	p, err := h.uc.Estimate(c.Context(), profileID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrMenteeNotFound):
			return middleware.NewAppError(fiber.StatusNotFound, "Mentee not found", nil, err)
		case errors.Is(err, usecase.ErrInvalidInput):
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request parameters", nil, err)
		default:
			return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
		}
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FinancialAidResponse{Result: p})
}
