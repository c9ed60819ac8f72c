package staticdata

import (
	"context"
	"fmt"
	"log/slog"

	"atelier-backoffice/internal/derive"
	"atelier-backoffice/internal/domain"
)

type shipmentsFile struct {
	Shipments []domain.ShipmentConfig `json:"shipments" validate:"dive"`
}

// ShipmentRepository отдаёт конфигурации партий, загруженные при старте.
// Порядок файла сохраняется: партии идут от новых к старым.
type ShipmentRepository struct {
	log     *slog.Logger
	configs []domain.ShipmentConfig
}

// NewShipmentRepository загружает и валидирует конфигурации партий.
// В строгом режиме неизвестная метка размера — ошибка загрузки,
// иначе она уйдёт в размер-корзину на этапе деривации.
func NewShipmentRepository(log *slog.Logger, path string, strictSizes bool) (*ShipmentRepository, error) {
	const op = "staticdata.NewShipmentRepository"

	var file shipmentsFile
	if err := loadJSON(path, &file); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if strictSizes {
		if err := derive.ValidateSizeLabels(file.Shipments); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	log.Info("Shipment configurations loaded",
		slog.String("op", op),
		slog.String("path", path),
		slog.Int("shipments", len(file.Shipments)),
		slog.Bool("strict_sizes", strictSizes),
	)

	return &ShipmentRepository{log: log, configs: file.Shipments}, nil
}

// List возвращает копию конфигураций в авторском порядке.
func (r *ShipmentRepository) List(_ context.Context) ([]domain.ShipmentConfig, error) {
	configs := make([]domain.ShipmentConfig, len(r.configs))
	copy(configs, r.configs)
	return configs, nil
}
