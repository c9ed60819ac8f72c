package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- Размеры ---

// Size представляет размер изделия из фиксированного перечисления.
type Size string

// Константы для размеров изделий.
const (
	SizeXS      Size = "XS"
	SizeS       Size = "S"
	SizeM       Size = "M"
	SizeL       Size = "L"
	SizeXL      Size = "XL"
	SizeOneSize Size = "OneSize"
)

// AllSizes перечисляет размеры в порядке вывода.
var AllSizes = []Size{SizeXS, SizeS, SizeM, SizeL, SizeXL, SizeOneSize}

// IsValid проверяет, входит ли размер в фиксированное перечисление.
func (s Size) IsValid() bool {
	switch s {
	case SizeXS, SizeS, SizeM, SizeL, SizeXL, SizeOneSize:
		return true
	default:
		return false
	}
}

// --- Каталог ---

// Category представляет категорию изделия в каталоге.
type Category string

// Константы для категорий каталога.
const (
	CategoryFur     Category = "Мех"
	CategorySuede   Category = "Замша"
	CategoryLeather Category = "Кожа"
	CategoryExotic  Category = "Экзотика"
)

// allowedCategories содержит список допустимых категорий для быстрой проверки.
var allowedCategories = map[Category]bool{
	CategoryFur:     true,
	CategorySuede:   true,
	CategoryLeather: true,
	CategoryExotic:  true,
}

// IsValid проверяет, является ли строка допустимой категорией каталога.
func (c Category) IsValid() bool {
	return allowedCategories[c]
}

// ProductMaterials описывает материалы изделия.
type ProductMaterials struct {
	Outer    string `json:"outer,omitempty"`    // Верх
	Lining   string `json:"lining,omitempty"`   // Подкладка
	Comments string `json:"comments,omitempty"` // Комментарии
}

// Product представляет изделие каталога. Каталог только читается,
// сервис никогда не изменяет и не сохраняет эти записи.
type Product struct {
	ID        string              `json:"id" validate:"required"`
	Name      string              `json:"name" validate:"required"`
	Category  Category            `json:"category" validate:"required"`
	Photo     string              `json:"photo"`
	Sizes     []string            `json:"sizes"`
	Price     decimal.NullDecimal `json:"price"` // Актуальная цена в долларах (может отсутствовать)
	Cost      decimal.NullDecimal `json:"cost"`  // Себестоимость в рублях
	Materials *ProductMaterials   `json:"materials,omitempty"`
	InStock   bool                `json:"inStock"`
	Tags      []string            `json:"tags,omitempty"`
}

// --- Конфигурация партий ---

// ShipmentRawItem представляет строку позиции партии так, как она
// записана в авторской конфигурации (перенос из Excel один в один).
type ShipmentRawItem struct {
	ProductID        string              `json:"productId"`
	OverrideName     string              `json:"overrideName,omitempty"`
	Sizes            map[string]int      `json:"sizes,omitempty" validate:"dive,gte=0"`
	QuantityOverride *int                `json:"quantityOverride,omitempty" validate:"omitempty,gte=0"`
	Price            decimal.NullDecimal `json:"price"` // Историческая цена на момент партии, доллары
	Cost             decimal.NullDecimal `json:"cost"`  // Себестоимость с учётом карго, рубли
	Status           string              `json:"status,omitempty"` // Текст статуса ровно как в Excel
	Sample           bool                `json:"sample,omitempty"`
	Note             string              `json:"note,omitempty"`
	PaidPreviously   bool                `json:"paidPreviously,omitempty"`
	NoPayment        bool                `json:"noPayment,omitempty"`
	InTransit        bool                `json:"inTransit,omitempty"`
	ShowStatusTag    bool                `json:"showStatusTag,omitempty"`
}

// ShipmentConfig представляет авторскую конфигурацию одной партии.
type ShipmentConfig struct {
	ID             string            `json:"id" validate:"required"`
	Title          string            `json:"title" validate:"required"`
	Status         string            `json:"status"` // Текст статуса партии ровно как в Excel
	ETA            string            `json:"eta,omitempty"`
	ReceivedDate   string            `json:"receivedDate,omitempty"`
	Year           *int              `json:"year,omitempty"` // Если не указан, берётся из receivedDate или текущий год
	GroupByPayment bool              `json:"groupByPayment,omitempty"`
	RawItems       []ShipmentRawItem `json:"rawItems" validate:"dive"`
}

// --- Производные сущности ---

// Position представляет одну позицию партии после нормализации.
// Пересчитывается при каждом чтении, никогда не мутируется.
type Position struct {
	ID          uuid.UUID           `json:"id"`       // Суррогатный ключ, генерируется адаптером
	GroupKey    string              `json:"groupKey"` // productId+qty+размеры; НЕ уникален
	ProductID   string              `json:"productId"`
	Title       string              `json:"title"`
	Sizes       map[Size]int        `json:"sizes"` // Полное отображение по перечислению размеров
	Qty         int                 `json:"qty"`
	Price       decimal.NullDecimal `json:"price"`
	Sum         decimal.NullDecimal `json:"sum"` // null при paidPreviously/noPayment или без цены
	Cost        decimal.NullDecimal `json:"cost"`
	Sample      bool                `json:"sample"`
	StatusLabel string              `json:"statusLabel"`
	NoteEnabled bool                `json:"noteEnabled"`
	NoteText    string              `json:"noteText,omitempty"`
}

// Batch представляет позиции одной партии.
type Batch struct {
	ID         string     `json:"id"`
	ReceivedAt string     `json:"receivedAt,omitempty"`
	Positions  []Position `json:"positions"`
}

// ShipmentWithItems представляет партию вместе с производными данными.
type ShipmentWithItems struct {
	ShipmentConfig
	Batch        Batch           `json:"batch"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	HasPriceGaps bool            `json:"hasPriceGaps"` // Итог занижен: есть позиции без цены
}

// ViewRow представляет группу позиций одного текстового статуса
// в порядке вывода на экран.
type ViewRow struct {
	StatusLabel string     `json:"statusLabel"`
	Items       []Position `json:"items"`
}

// YearGroup представляет партии одного года. Годы выводятся по убыванию,
// партии внутри года сохраняют порядок конфигурации.
type YearGroup struct {
	Year      int                 `json:"year"`
	Shipments []ShipmentWithItems `json:"shipments"`
	Turnover  decimal.Decimal     `json:"turnover"` // Сумма totalAmount партий года
}

// --- Деньги ---

// Deposit представляет депозит (предоплату), учитываемую вне модели партий.
type Deposit struct {
	ID     string          `json:"id" validate:"required"`
	Title  string          `json:"title" validate:"required"`
	Amount decimal.Decimal `json:"amount"`
	Note   string          `json:"note,omitempty"`
}

// ShipmentDue представляет задолженность по одной партии.
type ShipmentDue struct {
	ShipmentID   string          `json:"shipmentId"`
	Title        string          `json:"title"`
	Amount       decimal.Decimal `json:"amount"`
	HasPriceGaps bool            `json:"hasPriceGaps"`
}

// MoneySummary представляет сводку экрана финансов: неоплаченные суммы
// по партиям, депозиты и общий итог.
type MoneySummary struct {
	Outstanding     decimal.Decimal `json:"outstanding"`
	PerShipment     []ShipmentDue   `json:"perShipment"`
	Deposits        []Deposit       `json:"deposits"`
	DepositTotal    decimal.Decimal `json:"depositTotal"`
	TotalPayment    decimal.Decimal `json:"totalPayment"` // Outstanding + DepositTotal
	HasPriceGaps    bool            `json:"hasPriceGaps"`
	HasUnclassified bool            `json:"hasUnclassified"` // Есть статусы, не распознанные классификатором
}
