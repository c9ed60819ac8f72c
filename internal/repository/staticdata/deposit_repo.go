package staticdata

import (
	"context"
	"fmt"
	"log/slog"

	"atelier-backoffice/internal/domain"
)

type depositsFile struct {
	Deposits []domain.Deposit `json:"deposits" validate:"dive"`
}

// DepositRepository отдаёт депозиты, загруженные при старте.
type DepositRepository struct {
	log      *slog.Logger
	deposits []domain.Deposit
}

// NewDepositRepository загружает и валидирует депозиты.
func NewDepositRepository(log *slog.Logger, path string) (*DepositRepository, error) {
	const op = "staticdata.NewDepositRepository"

	var file depositsFile
	if err := loadJSON(path, &file); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("Deposits loaded",
		slog.String("op", op),
		slog.String("path", path),
		slog.Int("deposits", len(file.Deposits)),
	)

	return &DepositRepository{log: log, deposits: file.Deposits}, nil
}

// List возвращает копию депозитов в авторском порядке.
func (r *DepositRepository) List(_ context.Context) ([]domain.Deposit, error) {
	deposits := make([]domain.Deposit, len(r.deposits))
	copy(deposits, r.deposits)
	return deposits, nil
}
