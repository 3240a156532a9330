package handler

import (
	stdErrors "errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-insights/errors"
	"github.com/johnquangdev/meeting-insights/internal/adapter/dto/common"
	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
	usecaseErrors "github.com/johnquangdev/meeting-insights/internal/usecase/errors"
	"github.com/johnquangdev/meeting-insights/pkg/validator"
)

// getRequestID reads the id assigned by the RequestID middleware, falling
// back to the one the client sent
func getRequestID(c echo.Context) string {
	if c == nil {
		return ""
	}
	if id := c.Response().Header().Get(echo.HeaderXRequestID); id != "" {
		return id
	}
	if c.Request() == nil {
		return ""
	}
	return c.Request().Header.Get(echo.HeaderXRequestID)
}

// HandleSuccess writes data as the response body using provided logger
func HandleSuccess(logger *zap.Logger, c echo.Context, status int, data interface{}) error {
	if logger != nil {
		logger.Info("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
			zap.Int("status", status),
		)
	}

	return c.JSON(status, data)
}

// HandleError centralizes error handling and logging using provided logger.
// Internal errors are reported with a generic message only.
func HandleError(logger *zap.Logger, c echo.Context, err error) error {
	appErr := toAppError(err)

	if logger != nil {
		fields := []zap.Field{
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
			zap.Any("app_code", appErr.Code),
			zap.Error(err),
		}
		if appErr.HTTPCode >= http.StatusInternalServerError {
			logger.Error("http.response.error", fields...)
		} else {
			logger.Warn("http.response.error", fields...)
		}
	}

	return c.JSON(appErr.HTTPCode, common.ErrorResponse{
		Code:    appErr.Code.String(),
		Message: appErr.Message,
		Details: appErr.Details,
	})
}

// toAppError maps domain and use case errors onto API errors
func toAppError(err error) errors.AppError {
	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		return appErr
	}

	switch {
	case stdErrors.Is(err, entities.ErrMeetingNotFound):
		return errors.ErrNotFound("Meeting")
	case stdErrors.Is(err, entities.ErrActionItemNotFound):
		return errors.ErrNotFound("Action item")
	case stdErrors.Is(err, entities.ErrNotificationNotFound):
		return errors.ErrNotFound("Notification")
	case stdErrors.Is(err, entities.ErrDecisionNotFound):
		return errors.ErrNotFound("Decision")
	case stdErrors.Is(err, entities.ErrUserNotFound):
		return errors.ErrNotFound("User")
	case stdErrors.Is(err, entities.ErrInvalidMeetingStatus):
		return errors.ErrInvalidArgument("Invalid meeting status")
	case stdErrors.Is(err, usecaseErrors.ErrTranscriptEmpty):
		return errors.ErrTranscriptEmpty()
	case stdErrors.Is(err, usecaseErrors.ErrUnsupportedUpload):
		return errors.ErrInvalidArgument("Unsupported upload")
	case stdErrors.Is(err, usecaseErrors.ErrArchiveFailed):
		return errors.ErrStorageFailed("archive recording", err)
	}
	return errors.ErrInternal(err)
}

// parseID reads the numeric :id path parameter
func parseID(c echo.Context, resource string) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, errors.ErrInvalidID(resource)
	}
	return id, nil
}

// bindAndValidate decodes the body into req and checks its validate tags
func bindAndValidate(c echo.Context, req interface{}, resource string) error {
	if err := c.Bind(req); err != nil {
		return errors.ErrInvalidPayload()
	}
	if err := c.Validate(req); err != nil {
		if fields := validator.FieldErrors(err); fields != nil {
			return errors.ErrValidation(resource, fields)
		}
		return errors.ErrInvalidArgument(err.Error())
	}
	return nil
}
