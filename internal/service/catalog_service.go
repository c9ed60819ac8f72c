package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"atelier-backoffice/internal/derive"
	"atelier-backoffice/internal/domain"
)

// CatalogService отдаёт каталог изделий, дополняя отсутствующие цены
// актуальными ценами из последних партий (историческая правда о ценах
// живёт в конфигурации партий).
type CatalogService struct {
	log          *slog.Logger
	productRepo  domain.ProductRepository
	shipmentRepo domain.ShipmentRepository
	metrics      domain.MetricsCollector
}

func NewCatalogService(
	log *slog.Logger,
	productRepo domain.ProductRepository,
	shipmentRepo domain.ShipmentRepository,
	metrics domain.MetricsCollector,
) *CatalogService {
	return &CatalogService{
		log:          log,
		productRepo:  productRepo,
		shipmentRepo: shipmentRepo,
		metrics:      metrics,
	}
}

// ListProducts возвращает каталог в авторском порядке. Изделию без
// каталожной цены подставляется цена из последней партии, где оно
// встречается; если цены нет нигде, поле остаётся пустым.
func (s *CatalogService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	const op = "CatalogService.ListProducts"
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

	prices := derive.PriceMap(configs)
	for i := range products {
		if products[i].Price.Valid {
			continue
		}
		if price, ok := prices[products[i].ID]; ok {
			products[i].Price = decimal.NewNullDecimal(price)
		}
	}

	return products, nil
}

// GetProduct возвращает изделие по идентификатору с той же подстановкой цены.
func (s *CatalogService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	const op = "CatalogService.GetProduct"
	log := s.log.With(slog.String("op", op), slog.String("product_id", id))

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			log.Warn("Product not found")
			s.metrics.IncCatalogMisses()
			return nil, fmt.Errorf("%s: %w", op, domain.ErrProductNotFound)
		}
		log.Error("Failed to get product", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !product.Price.Valid {
		configs, err := s.shipmentRepo.List(ctx)
		if err != nil {
			log.Error("Failed to list shipment configs", slog.String("error", err.Error()))
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if price, ok := derive.LatestPrice(product.ID, configs); ok {
			product.Price = decimal.NewNullDecimal(price)
		}
	}

	return product, nil
}
