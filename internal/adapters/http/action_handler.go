package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/ecotrack/core/internal/domain/entities"
	"github.com/ecotrack/core/internal/infrastructure/logger"
	"github.com/ecotrack/core/internal/ports"
)

// ActionHandler handles action-related requests
type ActionHandler struct {
	actionService ports.ActionService
	logger        *logger.Logger
}

// NewActionHandler creates a new action handler
func NewActionHandler(actionService ports.ActionService, logger *logger.Logger) *ActionHandler {
	return &ActionHandler{
		actionService: actionService,
		logger:        logger,
	}
}

// ListActions handles listing all actions
func (h *ActionHandler) ListActions(c echo.Context) error {
	actions, err := h.actionService.ListActions(c.Request().Context())
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, actions)
}

// CreateAction handles action creation
func (h *ActionHandler) CreateAction(c echo.Context) error {
	var req ports.CreateActionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	action, err := h.actionService.CreateAction(c.Request().Context(), req)
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusCreated, action)
}

// GetAction handles getting an action by ID
func (h *ActionHandler) GetAction(c echo.Context) error {
	id, err := bindActionID(c)
	if err != nil {
		return h.respondError(c, err)
	}

	action, err := h.actionService.GetAction(c.Request().Context(), id)
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, action)
}

// UpdateAction handles a full update of an action
func (h *ActionHandler) UpdateAction(c echo.Context) error {
	return h.update(c, false)
}

// PatchAction handles a partial update of an action
func (h *ActionHandler) PatchAction(c echo.Context) error {
	return h.update(c, true)
}

func (h *ActionHandler) update(c echo.Context, partial bool) error {
	id, err := bindActionID(c)
	if err != nil {
		return h.respondError(c, err)
	}

	var req ports.UpdateActionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	action, err := h.actionService.UpdateAction(c.Request().Context(), id, req, partial)
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, action)
}

// DeleteAction handles action deletion
func (h *ActionHandler) DeleteAction(c echo.Context) error {
	id, err := bindActionID(c)
	if err != nil {
		return h.respondError(c, err)
	}

	if err := h.actionService.DeleteAction(c.Request().Context(), id); err != nil {
		return h.respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// respondError maps service errors to HTTP responses: field messages for
// validation failures, a detail body for missing records, and a generic
// server error for storage failures
func (h *ActionHandler) respondError(c echo.Context, err error) error {
	if ve, ok := entities.AsValidationError(err); ok {
		return c.JSON(http.StatusBadRequest, ve.Fields)
	}

	if errors.Is(err, entities.ErrActionNotFound) {
		return c.JSON(http.StatusNotFound, DetailResponse{Detail: "Action not found"})
	}

	h.logger.Error("Action request failed", "error", err, "path", c.Request().URL.Path)
	return c.JSON(http.StatusInternalServerError, DetailResponse{Detail: "Internal server error"})
}

// bindActionID parses the :id route param. A non-numeric id can never match
// a record, so it reads as not found rather than a bad request.
func bindActionID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, entities.ErrActionNotFound
	}
	return id, nil
}

// DetailResponse is a single-message response body
type DetailResponse struct {
	Detail string `json:"detail"`
}
