package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"atelier-backoffice/internal/domain"
	"atelier-backoffice/internal/handler/http/response"
	mw "atelier-backoffice/internal/middleware"
)

type CatalogHandler struct {
	BaseHandler
	catalogService domain.CatalogService
}

func NewCatalogHandler(log *slog.Logger, catalogService domain.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		BaseHandler:    *NewBaseHandler(log),
		catalogService: catalogService,
	}
}

// GetProducts возвращает каталог изделий.
func (h *CatalogHandler) GetProducts(c *gin.Context) {
	const op = "CatalogHandler.GetProducts"

	products, err := h.catalogService.ListProducts(c.Request.Context())
	if err != nil {
		h.handleError(c, op, err)
		return
	}

	items := make([]ProductResponse, 0, len(products))
	for _, product := range products {
		items = append(items, toProductResponse(product))
	}
	response.SendSuccess(c, http.StatusOK, items)
}

// GetProductByID возвращает изделие по идентификатору.
func (h *CatalogHandler) GetProductByID(c *gin.Context) {
	const op = "CatalogHandler.GetProductByID"
	reqID := mw.GetRequestIDFromContext(c)
	log := h.log.With(slog.String("op", op), slog.String("request_id", reqID))

	productID := c.Param("productId")
	if productID == "" {
		log.Warn("productId path parameter is empty")
		response.SendError(c, http.StatusBadRequest, "productId is required")
		return
	}

	product, err := h.catalogService.GetProduct(c.Request.Context(), productID)
	if err != nil {
		h.handleError(c, op, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, toProductResponse(*product))
}
