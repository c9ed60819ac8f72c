package staticdata

import (
	"context"
	"fmt"
	"log/slog"

	"atelier-backoffice/internal/domain"
)

type productsFile struct {
	Products []domain.Product `json:"products" validate:"dive"`
}

// ProductRepository отдаёт каталог изделий, загруженный при старте.
type ProductRepository struct {
	log      *slog.Logger
	products []domain.Product
	byID     map[string]int
}

// NewProductRepository загружает и валидирует каталог из JSON-файла.
func NewProductRepository(log *slog.Logger, path string) (*ProductRepository, error) {
	const op = "staticdata.NewProductRepository"

	var file productsFile
	if err := loadJSON(path, &file); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	byID := make(map[string]int, len(file.Products))
	for i, product := range file.Products {
		if _, dup := byID[product.ID]; dup {
			return nil, fmt.Errorf("%s: %w: duplicate product id %q", op, domain.ErrDataLoad, product.ID)
		}
		byID[product.ID] = i
	}

	log.Info("Product catalog loaded",
		slog.String("op", op),
		slog.String("path", path),
		slog.Int("products", len(file.Products)),
	)

	return &ProductRepository{log: log, products: file.Products, byID: byID}, nil
}

// List возвращает копию каталога в авторском порядке.
func (r *ProductRepository) List(_ context.Context) ([]domain.Product, error) {
	products := make([]domain.Product, len(r.products))
	copy(products, r.products)
	return products, nil
}

// GetByID находит изделие по идентификатору.
func (r *ProductRepository) GetByID(_ context.Context, id string) (*domain.Product, error) {
	const op = "ProductRepository.GetByID"
	index, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, domain.ErrProductNotFound)
	}
	product := r.products[index]
	return &product, nil
}
