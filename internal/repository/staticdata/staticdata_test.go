package staticdata_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atelier-backoffice/internal/domain"
	"atelier-backoffice/internal/repository/staticdata"
)

var testLog = slog.New(slog.NewTextHandler(io.Discard, nil))

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewProductRepository_LoadsCatalog(t *testing.T) {
	path := writeFile(t, "products.json", `{
		"products": [
			{"id": "fur-coat", "name": "Шуба норковая", "category": "Мех", "price": 1450},
			{"id": "suede-jacket", "name": "Куртка замшевая", "category": "Замша", "price": null}
		]
	}`)

	repo, err := staticdata.NewProductRepository(testLog, path)
	require.NoError(t, err)

	products, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "fur-coat", products[0].ID)
	require.True(t, products[0].Price.Valid)
	assert.True(t, products[0].Price.Decimal.Equal(decimal.NewFromInt(1450)))
	assert.False(t, products[1].Price.Valid)
}

func TestNewProductRepository_MissingFile(t *testing.T) {
	_, err := staticdata.NewProductRepository(testLog, filepath.Join(t.TempDir(), "absent.json"))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDataLoad)
}

func TestNewProductRepository_MalformedPriceFailsLoudly(t *testing.T) {
	path := writeFile(t, "products.json", `{
		"products": [
			{"id": "fur-coat", "name": "Шуба", "category": "Мех", "price": "дорого"}
		]
	}`)

	_, err := staticdata.NewProductRepository(testLog, path)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDataLoad)
}

func TestNewProductRepository_MissingIDFailsValidation(t *testing.T) {
	path := writeFile(t, "products.json", `{
		"products": [
			{"name": "Шуба", "category": "Мех"}
		]
	}`)

	_, err := staticdata.NewProductRepository(testLog, path)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDataLoad)
}

func TestNewProductRepository_DuplicateID(t *testing.T) {
	path := writeFile(t, "products.json", `{
		"products": [
			{"id": "fur-coat", "name": "Шуба", "category": "Мех"},
			{"id": "fur-coat", "name": "Шуба вторая", "category": "Мех"}
		]
	}`)

	_, err := staticdata.NewProductRepository(testLog, path)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDataLoad)
	assert.Contains(t, err.Error(), "fur-coat")
}

func TestProductRepository_GetByID(t *testing.T) {
	path := writeFile(t, "products.json", `{
		"products": [{"id": "fur-coat", "name": "Шуба", "category": "Мех"}]
	}`)
	repo, err := staticdata.NewProductRepository(testLog, path)
	require.NoError(t, err)

	product, err := repo.GetByID(context.Background(), "fur-coat")
	require.NoError(t, err)
	assert.Equal(t, "Шуба", product.Name)

	_, err = repo.GetByID(context.Background(), "ghost")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestNewShipmentRepository_KeepsFileOrder(t *testing.T) {
	path := writeFile(t, "shipments.json", `{
		"shipments": [
			{"id": "shipment-2", "title": "Партия 2", "rawItems": []},
			{"id": "shipment-1", "title": "Партия 1", "rawItems": [
				{"productId": "fur-coat", "sizes": {"S": 2}, "price": 100, "status": "оплачен"}
			]}
		]
	}`)

	repo, err := staticdata.NewShipmentRepository(testLog, path, false)
	require.NoError(t, err)

	configs, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, configs, 2)
	assert.Equal(t, "shipment-2", configs[0].ID)
	assert.Equal(t, "shipment-1", configs[1].ID)
	require.Len(t, configs[1].RawItems, 1)
	assert.Equal(t, "оплачен", configs[1].RawItems[0].Status)
}

func TestNewShipmentRepository_StrictSizes(t *testing.T) {
	content := `{
		"shipments": [
			{"id": "shipment-1", "title": "Партия 1", "rawItems": [
				{"productId": "fur-coat", "sizes": {"XXL": 1}}
			]}
		]
	}`

	// Нестрогий режим пропускает неизвестную метку
	repo, err := staticdata.NewShipmentRepository(testLog, writeFile(t, "shipments.json", content), false)
	require.NoError(t, err)
	require.NotNil(t, repo)

	// Строгий режим отклоняет файл целиком
	_, err = staticdata.NewShipmentRepository(testLog, writeFile(t, "shipments.json", content), true)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownSizeLabel)
}

func TestNewShipmentRepository_NegativeCountFailsValidation(t *testing.T) {
	path := writeFile(t, "shipments.json", `{
		"shipments": [
			{"id": "shipment-1", "title": "Партия 1", "rawItems": [
				{"productId": "fur-coat", "sizes": {"S": -1}}
			]}
		]
	}`)

	_, err := staticdata.NewShipmentRepository(testLog, path, false)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDataLoad)
}

func TestNewDepositRepository(t *testing.T) {
	path := writeFile(t, "deposits.json", `{
		"deposits": [
			{"id": "dep-1", "title": "Депозит за шубу", "amount": 2500},
			{"id": "dep-2", "title": "Остаток", "amount": 700.50}
		]
	}`)

	repo, err := staticdata.NewDepositRepository(testLog, path)
	require.NoError(t, err)

	deposits, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, deposits, 2)
	assert.True(t, deposits[1].Amount.Equal(decimal.RequireFromString("700.50")))
}

func TestNewDepositRepository_MissingTitle(t *testing.T) {
	path := writeFile(t, "deposits.json", `{
		"deposits": [{"id": "dep-1", "amount": 100}]
	}`)

	_, err := staticdata.NewDepositRepository(testLog, path)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDataLoad)
}
