package handler

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v3"

	"mentor-match/internal/delivery/http/dto"
	"mentor-match/internal/delivery/http/middleware"
	"mentor-match/internal/domain/record"
	"mentor-match/internal/pkg/response"
	"mentor-match/internal/usecase"
)

type CollectionHandler struct {
	uc usecase.CollectionUsecase
}

type updateRequest struct {
	Query      record.Filter `json:"query"`
	UpdateData record.Record `json:"update_data"`
}

func NewCollectionHandler(uc usecase.CollectionUsecase) *CollectionHandler {
	return &CollectionHandler{uc: uc}
}

// RegisterReadRoutes wires the read-only endpoints; mutating endpoints
// are registered separately so they can sit behind auth.
func (h *CollectionHandler) RegisterReadRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/:collection/read", h.Read)
	r.Post("/:collection/search", h.Search)
}

func (h *CollectionHandler) RegisterWriteRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/:collection/create", h.Create)
	r.Post("/:collection/update", h.Update)
	r.Delete("/:collection/delete/:profile_id", h.Delete)
}

func (h *CollectionHandler) Create(c fiber.Ctx) error {
	collection, err := collectionParam(c)
	if err != nil {
		return err
	}

	var doc record.Record
	if err := c.Bind().Body(&doc); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	created, err := h.uc.Create(c.Context(), collection, doc)
	if err != nil {
		return mapCollectionError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.RecordResponse{Result: created})
}

func (h *CollectionHandler) Read(c fiber.Ctx) error {
	collection, err := collectionParam(c)
	if err != nil {
		return err
	}

	// The filter body is optional; no body means a full scan.
	var filter record.Filter
	if len(c.Body()) > 0 {
		if err := c.Bind().Body(&filter); err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
		}
	}

	docs, err := h.uc.Read(c.Context(), collection, filter)
	if err != nil {
		return mapCollectionError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.RecordsResponse{Result: docs})
}

func (h *CollectionHandler) Search(c fiber.Ctx) error {
	collection, err := collectionParam(c)
	if err != nil {
		return err
	}

	query := strings.TrimSpace(c.Query("search"))
	if query == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "Missing search parameter", nil, nil)
	}

	docs, err := h.uc.Search(c.Context(), collection, query)
	if err != nil {
		return mapCollectionError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.RecordsResponse{Result: docs})
}

func (h *CollectionHandler) Update(c fiber.Ctx) error {
	collection, err := collectionParam(c)
	if err != nil {
		return err
	}

	var req updateRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	n, err := h.uc.Update(c.Context(), collection, req.Query, req.UpdateData)
	if err != nil {
		return mapCollectionError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.CountResponse{Result: n})
}

func (h *CollectionHandler) Delete(c fiber.Ctx) error {
	collection, err := collectionParam(c)
	if err != nil {
		return err
	}

	profileID := strings.TrimSpace(c.Params("profile_id"))
	if profileID == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "Missing profile_id", nil, nil)
	}

	if _, err := h.uc.Delete(c.Context(), collection, profileID); err != nil {
		return mapCollectionError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.DeletedResponse{Deleted: profileID})
}

// collectionParam rejects the Users collection: account documents
// carry password hashes and are reachable only through /auth.
func collectionParam(c fiber.Ctx) (string, error) {
	collection := strings.TrimSpace(c.Params("collection"))
	if collection == "" {
		return "", middleware.NewAppError(fiber.StatusBadRequest, "Missing collection", nil, nil)
	}
	if strings.EqualFold(collection, record.CollectionUsers) {
		return "", middleware.NewAppError(fiber.StatusForbidden, "Collection is not accessible", nil, nil)
	}
	return collection, nil
}

func mapCollectionError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	case errors.Is(err, record.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, response.MessageNotFound, nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
