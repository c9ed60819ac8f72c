package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"atelier-backoffice/internal/derive"
	"atelier-backoffice/internal/domain"
)

// ShipmentService строит отображаемые записи партий из статической
// конфигурации и каталога. Сущности эфемерны и пересчитываются при
// каждом вызове — набор данных мал.
type ShipmentService struct {
	log          *slog.Logger
	productRepo  domain.ProductRepository
	shipmentRepo domain.ShipmentRepository
	deriver      *derive.Deriver
	metrics      domain.MetricsCollector
	now          func() time.Time
}

func NewShipmentService(
	log *slog.Logger,
	productRepo domain.ProductRepository,
	shipmentRepo domain.ShipmentRepository,
	deriver *derive.Deriver,
	metrics domain.MetricsCollector,
) *ShipmentService {
	return &ShipmentService{
		log:          log,
		productRepo:  productRepo,
		shipmentRepo: shipmentRepo,
		deriver:      deriver,
		metrics:      metrics,
		now:          time.Now,
	}
}

// buildShipments загружает входы и строит партии в порядке конфигурации.
func (s *ShipmentService) buildShipments(ctx context.Context, op string) ([]domain.ShipmentWithItems, error) {
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

	shipments := s.deriver.BuildShipments(products, configs)

	s.metrics.IncShipmentViewsBuilt()
	for _, shipment := range shipments {
		if shipment.HasPriceGaps {
			s.metrics.IncPriceGapShipments()
			log.Warn("Shipment total is an undercount: positions without price",
				slog.String("shipment_id", shipment.ID))
		}
	}

	return shipments, nil
}

// ListShipments возвращает полные записи партий в порядке конфигурации.
func (s *ShipmentService) ListShipments(ctx context.Context) ([]domain.ShipmentWithItems, error) {
	const op = "ShipmentService.ListShipments"
	return s.buildShipments(ctx, op)
}

// ShipmentRows возвращает строки партии, сгруппированные и
// упорядоченные для отображения.
func (s *ShipmentService) ShipmentRows(ctx context.Context, shipmentID string) ([]domain.ViewRow, error) {
	const op = "ShipmentService.ShipmentRows"
	log := s.log.With(slog.String("op", op), slog.String("shipment_id", shipmentID))

	shipments, err := s.buildShipments(ctx, op)
	if err != nil {
		return nil, err
	}

	for _, shipment := range shipments {
		if shipment.ShipmentConfig.ID == shipmentID {
			return s.deriver.ToViewRows(shipment.Batch), nil
		}
	}

	log.Warn("Shipment not found")
	return nil, fmt.Errorf("%s: %w", op, domain.ErrShipmentNotFound)
}

// ListByYear возвращает партии по годам, от недавних к ранним.
// Партия без года и с нечитаемой датой получает текущий год; такие
// случаи логируются, а не проглатываются молча.
func (s *ShipmentService) ListByYear(ctx context.Context) ([]domain.YearGroup, error) {
	const op = "ShipmentService.ListByYear"
	log := s.log.With(slog.String("op", op))

	shipments, err := s.buildShipments(ctx, op)
	if err != nil {
		return nil, err
	}

	now := s.now()
	for _, shipment := range shipments {
		if shipment.Year == nil && derive.ShipmentYear(shipment, now) == now.Year() {
			log.Warn("Shipment year fell back to current year",
				slog.String("shipment_id", shipment.ID),
				slog.String("received_date", shipment.ReceivedDate))
		}
	}

	return derive.GroupShipmentsByYear(shipments, now), nil
}
