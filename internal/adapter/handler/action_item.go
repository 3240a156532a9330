package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	meetingDTO "github.com/johnquangdev/meeting-insights/internal/adapter/dto/meeting"
	"github.com/johnquangdev/meeting-insights/internal/usecase/meeting"
)

// ActionItem handles action item and decision requests
type ActionItem struct {
	meetingService meeting.Service
	logger         *zap.Logger
}

// NewActionItemHandler creates a new action item handler
func NewActionItemHandler(meetingService meeting.Service, logger *zap.Logger) *ActionItem {
	return &ActionItem{
		meetingService: meetingService,
		logger:         logger,
	}
}

// ListActionItems handles GET /action-items
// @Summary      List action items
// @Tags         Action Items
// @Produce      json
// @Success      200  {array}  entities.ActionItem
// @Router       /action-items [get]
func (h *ActionItem) ListActionItems(c echo.Context) error {
	items, err := h.meetingService.ListActionItems(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, items)
}

// CreateActionItem handles POST /action-items
// @Summary      Create an action item
// @Tags         Action Items
// @Accept       json
// @Produce      json
// @Param        request  body      meeting.CreateActionItemRequest  true  "Action item"
// @Success      201      {object}  entities.ActionItem
// @Failure      400      {object}  common.ErrorResponse  "Invalid action item data"
// @Router       /action-items [post]
func (h *ActionItem) CreateActionItem(c echo.Context) error {
	var req meetingDTO.CreateActionItemRequest
	if err := bindAndValidate(c, &req, "action item"); err != nil {
		return HandleError(h.logger, c, err)
	}

	item, err := h.meetingService.CreateActionItem(c.Request().Context(), req.ToInput())
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusCreated, item)
}

// UpdateActionItem handles PATCH /action-items/:id
// @Summary      Update an action item
// @Tags         Action Items
// @Accept       json
// @Produce      json
// @Param        id       path      int                              true  "Action item ID"
// @Param        request  body      meeting.UpdateActionItemRequest  true  "Fields to change"
// @Success      200      {object}  entities.ActionItem
// @Failure      400      {object}  common.ErrorResponse
// @Failure      404      {object}  common.ErrorResponse  "Action item not found"
// @Router       /action-items/{id} [patch]
func (h *ActionItem) UpdateActionItem(c echo.Context) error {
	id, err := parseID(c, "action item")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req meetingDTO.UpdateActionItemRequest
	if err := bindAndValidate(c, &req, "action item"); err != nil {
		return HandleError(h.logger, c, err)
	}

	item, err := h.meetingService.UpdateActionItem(c.Request().Context(), id, req.ToPatch())
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, item)
}

// CreateDecision handles POST /decisions
// @Summary      Record a decision
// @Tags         Decisions
// @Accept       json
// @Produce      json
// @Param        request  body      meeting.CreateDecisionRequest  true  "Decision"
// @Success      201      {object}  entities.Decision
// @Failure      400      {object}  common.ErrorResponse  "Invalid decision data"
// @Router       /decisions [post]
func (h *ActionItem) CreateDecision(c echo.Context) error {
	var req meetingDTO.CreateDecisionRequest
	if err := bindAndValidate(c, &req, "decision"); err != nil {
		return HandleError(h.logger, c, err)
	}

	d, err := h.meetingService.CreateDecision(c.Request().Context(), req.ToInput())
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusCreated, d)
}
