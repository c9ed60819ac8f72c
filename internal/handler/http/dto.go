package http

import (
	"github.com/shopspring/decimal"

	"atelier-backoffice/internal/domain"
	"atelier-backoffice/internal/format"
)

// Суммы отдаются парой: сырое значение строкой и готовая подпись,
// чтобы фронту не пришлось дублировать форматирование валют.

type StatusResponse struct {
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

type PositionResponse struct {
	ID           string              `json:"id"`
	GroupKey     string              `json:"groupKey"`
	ProductID    string              `json:"productId"`
	Title        string              `json:"title"`
	Sizes        map[domain.Size]int `json:"sizes"`
	Qty          int                 `json:"qty"`
	Price        *string             `json:"price"`
	Sum          *string             `json:"sum"`
	SumFormatted *string             `json:"sumFormatted"`
	Sample       bool                `json:"sample"`
	Status       StatusResponse      `json:"status"`
	NoteEnabled  bool                `json:"noteEnabled"`
	NoteText     string              `json:"noteText,omitempty"`
}

type BatchResponse struct {
	ID         string             `json:"id"`
	ReceivedAt string             `json:"receivedAt,omitempty"`
	Positions  []PositionResponse `json:"positions"`
}

type ShipmentResponse struct {
	ID                    string         `json:"id"`
	Title                 string         `json:"title"`
	Status                StatusResponse `json:"status"`
	ETA                   string         `json:"eta,omitempty"`
	ReceivedDate          string         `json:"receivedDate,omitempty"`
	Batch                 BatchResponse  `json:"batch"`
	TotalAmount           string         `json:"totalAmount"`
	TotalAmountFormatted  string         `json:"totalAmountFormatted"`
	HasPriceGaps          bool           `json:"hasPriceGaps"`
}

type ViewRowResponse struct {
	Status StatusResponse     `json:"status"`
	Paid   bool               `json:"paid"`
	Items  []PositionResponse `json:"items"`
}

type YearGroupResponse struct {
	Year              int                `json:"year"`
	Shipments         []ShipmentResponse `json:"shipments"`
	Turnover          string             `json:"turnover"`
	TurnoverFormatted string             `json:"turnoverFormatted"`
}

type ProductResponse struct {
	ID             string                   `json:"id"`
	Name           string                   `json:"name"`
	Category       domain.Category          `json:"category"`
	Photo          string                   `json:"photo"`
	Sizes          []string                 `json:"sizes"`
	Price          *string                  `json:"price"`
	PriceFormatted *string                  `json:"priceFormatted"`
	Materials      *domain.ProductMaterials `json:"materials,omitempty"`
	InStock        bool                     `json:"inStock"`
	Tags           []string                 `json:"tags,omitempty"`
}

type DepositResponse struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Amount          string `json:"amount"`
	AmountFormatted string `json:"amountFormatted"`
	Note            string `json:"note,omitempty"`
}

type ShipmentDueResponse struct {
	ShipmentID      string `json:"shipmentId"`
	Title           string `json:"title"`
	Amount          string `json:"amount"`
	AmountFormatted string `json:"amountFormatted"`
	HasPriceGaps    bool   `json:"hasPriceGaps"`
}

type MoneySummaryResponse struct {
	Outstanding           string                `json:"outstanding"`
	OutstandingFormatted  string                `json:"outstandingFormatted"`
	PerShipment           []ShipmentDueResponse `json:"perShipment"`
	Deposits              []DepositResponse     `json:"deposits"`
	DepositTotal          string                `json:"depositTotal"`
	DepositTotalFormatted string                `json:"depositTotalFormatted"`
	TotalPayment          string                `json:"totalPayment"`
	TotalPaymentFormatted string                `json:"totalPaymentFormatted"`
	HasPriceGaps          bool                  `json:"hasPriceGaps"`
	HasUnclassified       bool                  `json:"hasUnclassified"`
}

func nullableAmount(d decimal.NullDecimal) (*string, *string) {
	if !d.Valid {
		return nil, nil
	}
	raw := d.Decimal.String()
	formatted := format.Currency(d.Decimal)
	return &raw, &formatted
}

func toStatusResponse(raw string) StatusResponse {
	return StatusResponse{
		Label: format.StatusLabel(raw),
		Icon:  format.StatusIcon(raw),
	}
}

func toPositionResponse(position domain.Position) PositionResponse {
	price, _ := nullableAmount(position.Price)
	sum, sumFormatted := nullableAmount(position.Sum)
	return PositionResponse{
		ID:           position.ID.String(),
		GroupKey:     position.GroupKey,
		ProductID:    position.ProductID,
		Title:        position.Title,
		Sizes:        position.Sizes,
		Qty:          position.Qty,
		Price:        price,
		Sum:          sum,
		SumFormatted: sumFormatted,
		Sample:       position.Sample,
		Status:       toStatusResponse(position.StatusLabel),
		NoteEnabled:  position.NoteEnabled,
		NoteText:     position.NoteText,
	}
}

func toBatchResponse(batch domain.Batch) BatchResponse {
	positions := make([]PositionResponse, 0, len(batch.Positions))
	for _, position := range batch.Positions {
		positions = append(positions, toPositionResponse(position))
	}
	return BatchResponse{
		ID:         batch.ID,
		ReceivedAt: batch.ReceivedAt,
		Positions:  positions,
	}
}

func toShipmentResponse(shipment domain.ShipmentWithItems) ShipmentResponse {
	return ShipmentResponse{
		ID:                   shipment.ShipmentConfig.ID,
		Title:                shipment.Title,
		Status:               toStatusResponse(shipment.Status),
		ETA:                  shipment.ETA,
		ReceivedDate:         shipment.ReceivedDate,
		Batch:                toBatchResponse(shipment.Batch),
		TotalAmount:          shipment.TotalAmount.String(),
		TotalAmountFormatted: format.Currency(shipment.TotalAmount),
		HasPriceGaps:         shipment.HasPriceGaps,
	}
}

func toShipmentListResponse(shipments []domain.ShipmentWithItems) []ShipmentResponse {
	items := make([]ShipmentResponse, 0, len(shipments))
	for _, shipment := range shipments {
		items = append(items, toShipmentResponse(shipment))
	}
	return items
}

func toViewRowResponse(row domain.ViewRow, paid bool) ViewRowResponse {
	items := make([]PositionResponse, 0, len(row.Items))
	for _, position := range row.Items {
		items = append(items, toPositionResponse(position))
	}
	return ViewRowResponse{
		Status: toStatusResponse(row.StatusLabel),
		Paid:   paid,
		Items:  items,
	}
}

func toYearGroupResponse(group domain.YearGroup) YearGroupResponse {
	return YearGroupResponse{
		Year:              group.Year,
		Shipments:         toShipmentListResponse(group.Shipments),
		Turnover:          group.Turnover.String(),
		TurnoverFormatted: format.Currency(group.Turnover),
	}
}

func toProductResponse(product domain.Product) ProductResponse {
	price, priceFormatted := nullableAmount(product.Price)
	return ProductResponse{
		ID:             product.ID,
		Name:           product.Name,
		Category:       product.Category,
		Photo:          product.Photo,
		Sizes:          product.Sizes,
		Price:          price,
		PriceFormatted: priceFormatted,
		Materials:      product.Materials,
		InStock:        product.InStock,
		Tags:           product.Tags,
	}
}

func toMoneySummaryResponse(summary domain.MoneySummary) MoneySummaryResponse {
	perShipment := make([]ShipmentDueResponse, 0, len(summary.PerShipment))
	for _, due := range summary.PerShipment {
		perShipment = append(perShipment, ShipmentDueResponse{
			ShipmentID:      due.ShipmentID,
			Title:           due.Title,
			Amount:          due.Amount.String(),
			AmountFormatted: format.Currency(due.Amount),
			HasPriceGaps:    due.HasPriceGaps,
		})
	}
	deposits := make([]DepositResponse, 0, len(summary.Deposits))
	for _, deposit := range summary.Deposits {
		deposits = append(deposits, DepositResponse{
			ID:              deposit.ID,
			Title:           deposit.Title,
			Amount:          deposit.Amount.String(),
			AmountFormatted: format.Currency(deposit.Amount),
			Note:            deposit.Note,
		})
	}
	return MoneySummaryResponse{
		Outstanding:           summary.Outstanding.String(),
		OutstandingFormatted:  format.Currency(summary.Outstanding),
		PerShipment:           perShipment,
		Deposits:              deposits,
		DepositTotal:          summary.DepositTotal.String(),
		DepositTotalFormatted: format.Currency(summary.DepositTotal),
		TotalPayment:          summary.TotalPayment.String(),
		TotalPaymentFormatted: format.Currency(summary.TotalPayment),
		HasPriceGaps:          summary.HasPriceGaps,
		HasUnclassified:       summary.HasUnclassified,
	}
}
