package handler

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	meetingDTO "github.com/johnquangdev/meeting-insights/internal/adapter/dto/meeting"
	"github.com/johnquangdev/meeting-insights/internal/usecase/meeting"
)

// Subscriber attaches a websocket connection to a user's notification stream
type Subscriber interface {
	Serve(conn *websocket.Conn, userID int)
}

// Notification handles notification requests for the demo user
type Notification struct {
	meetingService meeting.Service
	subscriber     Subscriber
	upgrader       websocket.Upgrader
	demoUserID     int
	logger         *zap.Logger
}

// NewNotificationHandler creates a new notification handler. subscriber may
// be nil, in which case the websocket endpoint is unavailable.
func NewNotificationHandler(meetingService meeting.Service, subscriber Subscriber, demoUserID int, logger *zap.Logger) *Notification {
	return &Notification{
		meetingService: meetingService,
		subscriber:     subscriber,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		demoUserID: demoUserID,
		logger:     logger,
	}
}

// ListNotifications handles GET /notifications
// @Summary      List notifications
// @Description  Lists the demo user's notifications, newest first
// @Tags         Notifications
// @Produce      json
// @Success      200  {array}  entities.Notification
// @Router       /notifications [get]
func (h *Notification) ListNotifications(c echo.Context) error {
	notifications, err := h.meetingService.ListNotifications(c.Request().Context(), h.demoUserID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, notifications)
}

// CreateNotification handles POST /notifications
// @Summary      Create a notification
// @Tags         Notifications
// @Accept       json
// @Produce      json
// @Param        request  body      meeting.CreateNotificationRequest  true  "Notification"
// @Success      201      {object}  entities.Notification
// @Failure      400      {object}  common.ErrorResponse  "Invalid notification data"
// @Router       /notifications [post]
func (h *Notification) CreateNotification(c echo.Context) error {
	var req meetingDTO.CreateNotificationRequest
	if err := bindAndValidate(c, &req, "notification"); err != nil {
		return HandleError(h.logger, c, err)
	}

	n, err := h.meetingService.CreateNotification(c.Request().Context(), req.ToInput())
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusCreated, n)
}

// MarkRead handles PATCH /notifications/:id/read
// @Summary      Mark a notification as read
// @Tags         Notifications
// @Produce      json
// @Param        id   path      int  true  "Notification ID"
// @Success      200  {object}  entities.Notification
// @Failure      400  {object}  common.ErrorResponse  "Invalid notification ID"
// @Failure      404  {object}  common.ErrorResponse  "Notification not found"
// @Router       /notifications/{id}/read [patch]
func (h *Notification) MarkRead(c echo.Context) error {
	id, err := parseID(c, "notification")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	n, err := h.meetingService.MarkNotificationRead(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, n)
}

// Subscribe handles GET /notifications/ws
// @Summary      Stream notifications
// @Description  Upgrades to a websocket that receives notification.created and notification.read events
// @Tags         Notifications
// @Router       /notifications/ws [get]
func (h *Notification) Subscribe(c echo.Context) error {
	if h.subscriber == nil {
		return c.NoContent(http.StatusNotImplemented)
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// the upgrader has already written the error response
		if h.logger != nil {
			h.logger.Warn("websocket upgrade failed", zap.String("request_id", getRequestID(c)), zap.Error(err))
		}
		return nil
	}

	h.subscriber.Serve(conn, h.demoUserID)
	return nil
}
