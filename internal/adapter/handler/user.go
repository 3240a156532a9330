package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-insights/internal/adapter/presenter"
	"github.com/johnquangdev/meeting-insights/internal/usecase/meeting"
)

// User handles user listing
type User struct {
	meetingService meeting.Service
	logger         *zap.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(meetingService meeting.Service, logger *zap.Logger) *User {
	return &User{
		meetingService: meetingService,
		logger:         logger,
	}
}

// ListUsers handles GET /users
// @Summary      List users
// @Description  Lists team members; passwords are never returned
// @Tags         Users
// @Produce      json
// @Success      200  {array}  common.UserResponse
// @Router       /users [get]
func (h *User) ListUsers(c echo.Context) error {
	users, err := h.meetingService.ListUsers(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToUserResponses(users))
}
