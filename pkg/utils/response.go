package utils

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "equipment-api/pkg/errors"
)

type MessageResponseBody struct {
	Message string `json:"message"`
}

type ErrorsResponseBody struct {
	Errors []string `json:"errors"`
}

func MessageResponse(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, MessageResponseBody{Message: message})
}

func ErrorsResponse(ctx echo.Context, code int, errs []string) error {
	if errs == nil {
		errs = []string{}
	}
	return ctx.JSON(code, ErrorsResponseBody{Errors: errs})
}

// ErrorResponse отдает клиенту только пользовательское сообщение,
// техническая причина уходит в лог.
func ErrorResponse(ctx echo.Context, err error, logger *zap.Logger) error {
	code := http.StatusInternalServerError
	message := http.StatusText(code)

	var httpErr *apperrors.HttpError
	switch {
	case errors.As(err, &httpErr):
		code = httpErr.Code
		message = httpErr.Message
	case errors.Is(err, apperrors.ErrNotFound):
		code = http.StatusNotFound
		message = http.StatusText(code)
	}

	if code >= http.StatusInternalServerError {
		logger.Error("Ошибка обработки запроса",
			zap.String("method", ctx.Request().Method),
			zap.String("uri", ctx.Request().RequestURI),
			zap.Error(err),
		)
	}

	return MessageResponse(ctx, code, message)
}
