package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"atelier-backoffice/internal/domain"
	"atelier-backoffice/internal/handler/http/response"
)

type MoneyHandler struct {
	BaseHandler
	moneyService domain.MoneyService
}

func NewMoneyHandler(log *slog.Logger, moneyService domain.MoneyService) *MoneyHandler {
	return &MoneyHandler{
		BaseHandler:  *NewBaseHandler(log),
		moneyService: moneyService,
	}
}

// GetMoney возвращает сводку экрана финансов.
func (h *MoneyHandler) GetMoney(c *gin.Context) {
	const op = "MoneyHandler.GetMoney"

	summary, err := h.moneyService.Summary(c.Request.Context())
	if err != nil {
		h.handleError(c, op, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, toMoneySummaryResponse(*summary))
}
