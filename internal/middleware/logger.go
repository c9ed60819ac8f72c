package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type contextKeyRequestID string

const RequestIDKey contextKeyRequestID = "requestID"

type LoggingMiddleware struct {
	log *slog.Logger
}

func NewLoggingMiddleware(log *slog.Logger) *LoggingMiddleware {
	return &LoggingMiddleware{log: log}
}

// LogRequest присваивает запросу request_id, кладёт его в контекст и
// логирует начало и завершение запроса с кодом, задержкой и ошибками.
func (m *LoggingMiddleware) LogRequest(c *gin.Context) {
	start := time.Now()
	path := c.Request.URL.Path
	rawQuery := c.Request.URL.RawQuery
	requestID := uuid.New().String()

	c.Set(string(RequestIDKey), requestID)
	c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), RequestIDKey, requestID))

	requestLogger := m.log.With(
		slog.String("request_id", requestID),
		slog.String("method", c.Request.Method),
		slog.String("path", path),
		slog.String("remote_ip", c.ClientIP()),
	)

	requestLogger.Info("Request started")

	c.Next()

	statusCode := c.Writer.Status()
	logArgs := []any{
		slog.Int("status_code", statusCode),
		slog.Duration("latency", time.Since(start)),
	}
	if rawQuery != "" {
		logArgs = append(logArgs, slog.String("query", rawQuery))
	}
	if errs := c.Errors.ByType(gin.ErrorTypeAny).String(); errs != "" {
		logArgs = append(logArgs, slog.String("errors", errs))
	}

	switch {
	case statusCode >= http.StatusInternalServerError:
		requestLogger.Error("Request completed with server error", logArgs...)
	case statusCode >= http.StatusBadRequest:
		requestLogger.Warn("Request completed with client error", logArgs...)
	default:
		requestLogger.Info("Request completed successfully", logArgs...)
	}
}

// GetRequestIDFromContext достаёт request_id из контекста запроса или
// gin-контекста; пустая строка, если идентификатора нет.
func GetRequestIDFromContext(ctx context.Context) string {
	if reqID, ok := ctx.Value(RequestIDKey).(string); ok && reqID != "" {
		return reqID
	}

	if gCtx, ok := ctx.(*gin.Context); ok {
		if reqID, exists := gCtx.Get(string(RequestIDKey)); exists {
			if idStr, ok := reqID.(string); ok && idStr != "" {
				return idStr
			}
		}
		if reqID, ok := gCtx.Request.Context().Value(RequestIDKey).(string); ok && reqID != "" {
			return reqID
		}
	}

	return ""
}
