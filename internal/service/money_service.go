package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"atelier-backoffice/internal/derive"
	"atelier-backoffice/internal/domain"
)

// MoneyService строит сводку экрана финансов: неоплаченные суммы по
// партиям, депозиты и общий итог надвигающейся расплаты.
type MoneyService struct {
	log          *slog.Logger
	productRepo  domain.ProductRepository
	shipmentRepo domain.ShipmentRepository
	depositRepo  domain.DepositRepository
	deriver      *derive.Deriver
	metrics      domain.MetricsCollector
}

func NewMoneyService(
	log *slog.Logger,
	productRepo domain.ProductRepository,
	shipmentRepo domain.ShipmentRepository,
	depositRepo domain.DepositRepository,
	deriver *derive.Deriver,
	metrics domain.MetricsCollector,
) *MoneyService {
	return &MoneyService{
		log:          log,
		productRepo:  productRepo,
		shipmentRepo: shipmentRepo,
		depositRepo:  depositRepo,
		deriver:      deriver,
		metrics:      metrics,
	}
}

// Summary считает задолженность по каждой партии (суммы позиций с
// неоплаченным статусом), складывает депозиты и выставляет флаги:
// HasPriceGaps — итог занижен из-за позиций без цены, HasUnclassified —
// среди статусов есть текст без сигнала об оплате.
func (s *MoneyService) Summary(ctx context.Context) (*domain.MoneySummary, error) {
	const op = "MoneyService.Summary"
	log := s.log.With(slog.String("op", op))

	products, err := s.productRepo.List(ctx)
	if err != nil {
		log.Error("Failed to list products", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	configs, err := s.shipmentRepo.List(ctx)
	if err != nil {
		log.Error("Failed to list shipment configs", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	deposits, err := s.depositRepo.List(ctx)
	if err != nil {
		log.Error("Failed to list deposits", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	vocab := s.deriver.Vocabulary()
	shipments := s.deriver.BuildShipments(products, configs)

	summary := &domain.MoneySummary{
		Outstanding:  decimal.Zero,
		PerShipment:  make([]domain.ShipmentDue, 0, len(shipments)),
		Deposits:     deposits,
		DepositTotal: decimal.Zero,
	}

	for _, shipment := range shipments {
		due := decimal.Zero
		for _, position := range shipment.Batch.Positions {
			if position.Sum.Valid && !vocab.IsPaid(position.StatusLabel) {
				due = due.Add(position.Sum.Decimal)
			}
		}
		if shipment.HasPriceGaps {
			summary.HasPriceGaps = true
		}
		if s.deriver.HasUnclassified(shipment.Batch.Positions) {
			summary.HasUnclassified = true
		}
		if due.IsZero() && !shipment.HasPriceGaps {
			continue
		}
		summary.Outstanding = summary.Outstanding.Add(due)
		summary.PerShipment = append(summary.PerShipment, domain.ShipmentDue{
			ShipmentID:   shipment.ShipmentConfig.ID,
			Title:        shipment.Title,
			Amount:       due,
			HasPriceGaps: shipment.HasPriceGaps,
		})
	}

	for _, deposit := range deposits {
		summary.DepositTotal = summary.DepositTotal.Add(deposit.Amount)
	}
	summary.TotalPayment = summary.Outstanding.Add(summary.DepositTotal)

	if summary.HasUnclassified {
		log.Warn("Money summary contains unclassified status texts")
	}

	return summary, nil
}
