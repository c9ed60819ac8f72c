package domain

import "context"

// ProductRepository определяет методы чтения каталога изделий.
// Каталог статический: реализация загружает авторский JSON при старте.
type ProductRepository interface {
	// List возвращает все изделия каталога в авторском порядке.
	List(ctx context.Context) ([]Product, error)
	// GetByID находит изделие по идентификатору.
	// Возвращает ErrProductNotFound, если изделие не найдено.
	GetByID(ctx context.Context, id string) (*Product, error)
}

// ShipmentRepository определяет методы чтения конфигураций партий.
type ShipmentRepository interface {
	// List возвращает конфигурации партий в авторском порядке
	// (от новых к старым).
	List(ctx context.Context) ([]ShipmentConfig, error)
}

// DepositRepository определяет методы чтения депозитов.
type DepositRepository interface {
	// List возвращает депозиты в авторском порядке.
	List(ctx context.Context) ([]Deposit, error)
}

// --- Интерфейсы Сервисов ---
// Определяют методы бизнес-логики (use cases).

// CatalogService определяет методы бизнес-логики каталога.
type CatalogService interface {
	// ListProducts возвращает каталог, дополняя отсутствующие цены
	// актуальными ценами из последних партий.
	ListProducts(ctx context.Context) ([]Product, error)
	// GetProduct возвращает изделие по идентификатору.
	// Возвращает ErrProductNotFound, если изделие не найдено.
	GetProduct(ctx context.Context, id string) (*Product, error)
}

// ShipmentService определяет методы бизнес-логики партий.
type ShipmentService interface {
	// ListShipments строит полные записи партий (позиции, итоги, флаги
	// пропусков цен) в порядке конфигурации.
	ListShipments(ctx context.Context) ([]ShipmentWithItems, error)
	// ShipmentRows возвращает строки партии, сгруппированные по статусу.
	// Возвращает ErrShipmentNotFound, если партия не найдена.
	ShipmentRows(ctx context.Context, shipmentID string) ([]ViewRow, error)
	// ListByYear возвращает партии, сгруппированные по годам (по убыванию).
	ListByYear(ctx context.Context) ([]YearGroup, error)
}

// MoneyService определяет методы бизнес-логики экрана финансов.
type MoneyService interface {
	// Summary строит сводку: неоплаченное по партиям, депозиты, общий итог.
	Summary(ctx context.Context) (*MoneySummary, error)
}

// MetricsCollector определяет контракт для сбора метрик Prometheus.
type MetricsCollector interface {
	IncRequestsTotal(method, path, statusCode string)
	ObserveRequestDuration(method, path string, duration float64)
	IncShipmentViewsBuilt()
	IncPriceGapShipments()
	IncCatalogMisses()
}
