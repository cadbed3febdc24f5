package handler

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v3"

	"mentor-match/internal/delivery/http/dto"
	"mentor-match/internal/delivery/http/middleware"
	"mentor-match/internal/domain/matching"
	"mentor-match/internal/pkg/response"
	"mentor-match/internal/usecase"
)

type MatchHandler struct {
	uc usecase.MatchUsecase
}

func NewMatchHandler(uc usecase.MatchUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/match/:profile_id", h.MatchMentors)
	r.Post("/match_resource/:item_id", h.MatchResource)
}

func (h *MatchHandler) MatchMentors(c fiber.Ctx) error {
	profileID := strings.TrimSpace(c.Params("profile_id"))
	nMatches, err := nMatchesQuery(c)
	if err != nil {
		return err
	}

	ids, err := h.uc.MatchMentors(c.Context(), nMatches, profileID)
	if err != nil {
		return mapMatchError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.MatchResponse{Result: ids})
}

func (h *MatchHandler) MatchResource(c fiber.Ctx) error {
	itemID := strings.TrimSpace(c.Params("item_id"))
	nMatches, err := nMatchesQuery(c)
	if err != nil {
		return err
	}

	ids, err := h.uc.MatchResource(c.Context(), nMatches, itemID)
	if err != nil {
		return mapMatchError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.MatchResponse{Result: ids})
}

func nMatchesQuery(c fiber.Ctx) (int, error) {
	raw := strings.TrimSpace(c.Query("n_matches"))
	if raw == "" {
		return 0, middleware.NewAppError(fiber.StatusBadRequest, "Missing n_matches parameter", nil, nil)
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, middleware.NewAppError(fiber.StatusBadRequest, "n_matches must be a positive integer", nil, err)
	}
	return n, nil
}

func mapMatchError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, matching.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Profile not found", nil, err)
	case errors.Is(err, matching.ErrInsufficientCandidates):
		return middleware.NewAppError(fiber.StatusBadRequest, "Not enough candidates for the requested sample", nil, err)
	case errors.Is(err, matching.ErrInvalidMatchCount), errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request parameters", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
