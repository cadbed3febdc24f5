package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"mentor-match/internal/delivery/http/dto"
	"mentor-match/internal/delivery/http/middleware"
	"mentor-match/internal/pkg/response"
	"mentor-match/internal/usecase"
)

type SentimentHandler struct {
	uc usecase.SentimentUsecase
}

type sentimentRequest struct {
	Text string `json:"text"`
}

func NewSentimentHandler(uc usecase.SentimentUsecase) *SentimentHandler {
	return &SentimentHandler{uc: uc}
}

func (h *SentimentHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/sentiment", h.Score)
}

func (h *SentimentHandler) Score(c fiber.Ctx) error {
	var req sentimentRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	scores, err := h.uc.Score(c.Context(), req.Text)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Text is required", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.SentimentResponse{
		Negative: scores.Negative,
		Neutral:  scores.Neutral,
		Positive: scores.Positive,
		Compound: scores.Compound,
	})
}
