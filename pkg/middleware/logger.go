// pkg/middleware/logger.go

package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const LoggerKey = "logger"

// InjectLogger - мидлвэр для добавления логгера в контекст запроса.
// Если у запроса есть X-Request-ID, логгер получает поле request_id.
func InjectLogger(logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			reqLogger := logger
			if id := c.Response().Header().Get(echo.HeaderXRequestID); id != "" {
				reqLogger = logger.With(zap.String("request_id", id))
			}
			c.Set(LoggerKey, reqLogger)
			return next(c)
		}
	}
}

// LoggerFrom достает логгер, положенный InjectLogger, или возвращает fallback.
func LoggerFrom(c echo.Context, fallback *zap.Logger) *zap.Logger {
	if l, ok := c.Get(LoggerKey).(*zap.Logger); ok && l != nil {
		return l
	}
	return fallback
}

// RequestLogger пишет одну строку access-лога на запрос.
func RequestLogger(fallback *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			LoggerFrom(c, fallback).Info("HTTP запрос",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Int("status", c.Response().Status),
				zap.Duration("latency", time.Since(start)),
			)
			return nil
		}
	}
}
