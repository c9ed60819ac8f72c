package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"atelier-backoffice/internal/domain"
)

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) List(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

type MockShipmentRepository struct {
	mock.Mock
}

func (m *MockShipmentRepository) List(ctx context.Context) ([]domain.ShipmentConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ShipmentConfig), args.Error(1)
}

type MockDepositRepository struct {
	mock.Mock
}

func (m *MockDepositRepository) List(ctx context.Context) ([]domain.Deposit, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Deposit), args.Error(1)
}

type MockMetricsCollector struct {
	mock.Mock
}

func (m *MockMetricsCollector) IncRequestsTotal(method, path, statusCode string) {
	m.Called(method, path, statusCode)
}

func (m *MockMetricsCollector) ObserveRequestDuration(method, path string, duration float64) {
	m.Called(method, path, duration)
}

func (m *MockMetricsCollector) IncShipmentViewsBuilt() {
	m.Called()
}

func (m *MockMetricsCollector) IncPriceGapShipments() {
	m.Called()
}

func (m *MockMetricsCollector) IncCatalogMisses() {
	m.Called()
}
