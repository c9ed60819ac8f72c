package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"atelier-backoffice/internal/domain"
	"atelier-backoffice/internal/handler/http/response"
	mw "atelier-backoffice/internal/middleware"
)

type BaseHandler struct {
	log *slog.Logger
}

func NewBaseHandler(log *slog.Logger) *BaseHandler {
	return &BaseHandler{log: log}
}

func (h *BaseHandler) mapError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		return http.StatusNotFound, "Product not found"
	case errors.Is(err, domain.ErrShipmentNotFound):
		return http.StatusNotFound, "Shipment not found"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "Resource not found"
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, "Invalid request data"
	case errors.Is(err, domain.ErrDataLoad):
		h.log.Error("Static data error surfaced at request time", slog.String("original_error", err.Error()))
		return http.StatusInternalServerError, "Internal server error (static data)"
	default:
		h.log.Error("Unknown internal error occurred", slog.String("error", err.Error()))
		return http.StatusInternalServerError, "Internal server error"
	}
}

func (h *BaseHandler) handleError(c *gin.Context, op string, err error) {
	reqID := mw.GetRequestIDFromContext(c)
	log := h.log.With(slog.String("op", op), slog.String("request_id", reqID))
	statusCode, message := h.mapError(err)
	if statusCode >= http.StatusInternalServerError {
		log.Error("Internal server error mapped", slog.Int("status", statusCode), slog.String("original_error", err.Error()))
	} else {
		log.Warn("Client error mapped", slog.Int("status", statusCode), slog.String("original_error", err.Error()))
	}
	response.SendError(c, statusCode, message)
}
