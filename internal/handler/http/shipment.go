package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"atelier-backoffice/internal/domain"
	"atelier-backoffice/internal/handler/http/response"
	mw "atelier-backoffice/internal/middleware"
	"atelier-backoffice/internal/statustext"
)

type ShipmentHandler struct {
	BaseHandler
	shipmentService domain.ShipmentService
	vocab           statustext.Vocabulary
}

func NewShipmentHandler(log *slog.Logger, shipmentService domain.ShipmentService, vocab statustext.Vocabulary) *ShipmentHandler {
	return &ShipmentHandler{
		BaseHandler:     *NewBaseHandler(log),
		shipmentService: shipmentService,
		vocab:           vocab,
	}
}

// GetShipments возвращает полные записи партий в порядке конфигурации.
func (h *ShipmentHandler) GetShipments(c *gin.Context) {
	const op = "ShipmentHandler.GetShipments"

	shipments, err := h.shipmentService.ListShipments(c.Request.Context())
	if err != nil {
		h.handleError(c, op, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, toShipmentListResponse(shipments))
}

// GetShipmentYears возвращает партии, сгруппированные по годам.
func (h *ShipmentHandler) GetShipmentYears(c *gin.Context) {
	const op = "ShipmentHandler.GetShipmentYears"

	groups, err := h.shipmentService.ListByYear(c.Request.Context())
	if err != nil {
		h.handleError(c, op, err)
		return
	}

	items := make([]YearGroupResponse, 0, len(groups))
	for _, group := range groups {
		items = append(items, toYearGroupResponse(group))
	}
	response.SendSuccess(c, http.StatusOK, items)
}

// GetShipmentRows возвращает строки партии, сгруппированные по статусу.
func (h *ShipmentHandler) GetShipmentRows(c *gin.Context) {
	const op = "ShipmentHandler.GetShipmentRows"
	reqID := mw.GetRequestIDFromContext(c)
	log := h.log.With(slog.String("op", op), slog.String("request_id", reqID))

	shipmentID := c.Param("shipmentId")
	if shipmentID == "" {
		log.Warn("shipmentId path parameter is empty")
		response.SendError(c, http.StatusBadRequest, "shipmentId is required")
		return
	}

	rows, err := h.shipmentService.ShipmentRows(c.Request.Context(), shipmentID)
	if err != nil {
		h.handleError(c, op, err)
		return
	}

	items := make([]ViewRowResponse, 0, len(rows))
	for _, row := range rows {
		items = append(items, toViewRowResponse(row, h.vocab.IsPaid(row.StatusLabel)))
	}
	response.SendSuccess(c, http.StatusOK, items)
}
