package derive

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"atelier-backoffice/internal/domain"
	"atelier-backoffice/internal/format"
)

// ParseSize приводит метку размера к перечислению. Сравнение
// регистронезависимое, "onesize" в любом написании — это OneSize.
func ParseSize(label string) (domain.Size, bool) {
	trimmed := strings.TrimSpace(label)
	if strings.EqualFold(trimmed, string(domain.SizeOneSize)) {
		return domain.SizeOneSize, true
	}
	upper := domain.Size(strings.ToUpper(trimmed))
	if upper.IsValid() {
		return upper, true
	}
	return "", false
}

// CleanProductName убирает из названия хвост в скобках с размерами
// и схлопывает повторные пробелы.
func CleanProductName(name string) string {
	if name == "" {
		return ""
	}
	cleaned := name
	if lastBracket := strings.LastIndex(cleaned, "("); lastBracket != -1 {
		cleaned = cleaned[:lastBracket]
	}
	return strings.Join(strings.Fields(cleaned), " ")
}

// groupKey строит составной ключ позиции из productId, количества и
// подписи размеров. Ключ намеренно не уникален: две одинаковые строки
// конфигурации дают одинаковый ключ.
func groupKey(productID string, qty int, sizes map[domain.Size]int) string {
	var sig strings.Builder
	for _, size := range domain.AllSizes {
		if count := sizes[size]; count > 0 {
			if sig.Len() > 0 {
				sig.WriteByte('_')
			}
			fmt.Fprintf(&sig, "%s%d", strings.ToLower(string(size)), count)
		}
	}
	return fmt.Sprintf("%s-%d-%s", productID, qty, sig.String())
}

// ToPosition преобразует сырую строку конфигурации в позицию.
// Отсутствие изделия в каталоге — не ошибка: название и цена
// деградируют до запасных значений.
func (d *Deriver) ToPosition(item domain.ShipmentRawItem, products []domain.Product) domain.Position {
	var product *domain.Product
	for i := range products {
		if products[i].ID == item.ProductID {
			product = &products[i]
			break
		}
	}

	// Историческая цена из партии важнее каталожной
	price := item.Price
	if !price.Valid && product != nil {
		price = product.Price
	}

	// Полное отображение размеров по перечислению, по умолчанию нули
	sizes := make(map[domain.Size]int, len(domain.AllSizes))
	for _, size := range domain.AllSizes {
		sizes[size] = 0
	}
	computedQuantity := 0
	for label, count := range item.Sizes {
		size, ok := ParseSize(label)
		if !ok {
			size = d.opts.FallbackSize
		}
		sizes[size] += count
		computedQuantity += count
	}

	// Порядок вычисления количества: override → сумма размеров → образец
	qty := computedQuantity
	if item.QuantityOverride != nil {
		qty = *item.QuantityOverride
	} else if computedQuantity == 0 && item.Sample {
		qty = 1
	}
	if qty < 0 {
		qty = 0
	}

	// inTransit принудительно переводит позицию в статус «уже в пути»
	statusLabel := format.StatusLabel(item.Status)
	if item.InTransit {
		statusLabel = format.StatusLabel("inTransit")
	}

	// Сумма отображается у всех позиций, кроме paidPreviously и noPayment
	var sum decimal.NullDecimal
	if price.Valid && !item.PaidPreviously && !item.NoPayment {
		sum = decimal.NewNullDecimal(price.Decimal.Mul(decimal.NewFromInt(int64(qty))))
	}

	// «Образец» отображается отдельным тегом, а не примечанием
	noteText := strings.TrimSpace(item.Note)
	switch strings.ToLower(noteText) {
	case "образец", "sample":
		noteText = ""
	}
	noteEnabled := item.ShowStatusTag || noteText != ""

	title := CleanProductName(item.OverrideName)
	if title == "" && product != nil {
		title = product.Name
	}
	if title == "" {
		title = "Неизвестное изделие"
	}

	return domain.Position{
		ID:          uuid.New(),
		GroupKey:    groupKey(item.ProductID, qty, sizes),
		ProductID:   item.ProductID,
		Title:       title,
		Sizes:       sizes,
		Qty:         qty,
		Price:       price,
		Sum:         sum,
		Cost:        item.Cost,
		Sample:      item.Sample,
		StatusLabel: statusLabel,
		NoteEnabled: noteEnabled,
		NoteText:    noteText,
	}
}

// ToBatch преобразует конфигурацию партии в Batch.
func (d *Deriver) ToBatch(config domain.ShipmentConfig, products []domain.Product) domain.Batch {
	positions := make([]domain.Position, 0, len(config.RawItems))
	for _, item := range config.RawItems {
		positions = append(positions, d.ToPosition(item, products))
	}
	return domain.Batch{
		ID:         config.ID,
		ReceivedAt: config.ReceivedDate,
		Positions:  positions,
	}
}

// BuildShipments строит полные записи партий в порядке конфигурации:
// позиции, итоговую сумму и флаг пропусков цен. Итог занижен, когда
// флаг выставлен: позиции без цены в сумму не входят.
func (d *Deriver) BuildShipments(products []domain.Product, configs []domain.ShipmentConfig) []domain.ShipmentWithItems {
	shipments := make([]domain.ShipmentWithItems, 0, len(configs))
	for _, config := range configs {
		batch := d.ToBatch(config, products)

		totalAmount := decimal.Zero
		hasPriceGaps := false
		for _, position := range batch.Positions {
			if position.Sum.Valid {
				totalAmount = totalAmount.Add(position.Sum.Decimal)
			}
			if position.Qty > 0 && !position.Price.Valid {
				hasPriceGaps = true
			}
		}

		shipments = append(shipments, domain.ShipmentWithItems{
			ShipmentConfig: config,
			Batch:          batch,
			TotalAmount:    totalAmount,
			HasPriceGaps:   hasPriceGaps,
		})
	}
	return shipments
}

// PriceMap возвращает актуальные цены изделий из партий. Партии идут
// от новых к старым, первая встреченная цена — самая свежая.
func PriceMap(configs []domain.ShipmentConfig) map[string]decimal.Decimal {
	prices := make(map[string]decimal.Decimal)
	for _, config := range configs {
		for _, item := range config.RawItems {
			if item.ProductID == "" || !item.Price.Valid {
				continue
			}
			if _, seen := prices[item.ProductID]; !seen {
				prices[item.ProductID] = item.Price.Decimal
			}
		}
	}
	return prices
}

// LatestPrice возвращает актуальную цену изделия из последней партии,
// где оно встречается. Второе значение — найдена ли цена.
func LatestPrice(productID string, configs []domain.ShipmentConfig) (decimal.Decimal, bool) {
	for _, config := range configs {
		for _, item := range config.RawItems {
			if item.ProductID == productID && item.Price.Valid {
				return item.Price.Decimal, true
			}
		}
	}
	return decimal.Decimal{}, false
}

// ValidateSizeLabels проверяет, что все метки размеров конфигурации
// входят в перечисление. Используется границей загрузки в строгом режиме.
func ValidateSizeLabels(configs []domain.ShipmentConfig) error {
	for _, config := range configs {
		for i, item := range config.RawItems {
			labels := make([]string, 0, len(item.Sizes))
			for label := range item.Sizes {
				labels = append(labels, label)
			}
			sort.Strings(labels)
			for _, label := range labels {
				if _, ok := ParseSize(label); !ok {
					return fmt.Errorf("%w: shipment %q item %d size %q",
						domain.ErrUnknownSizeLabel, config.ID, i, label)
				}
			}
		}
	}
	return nil
}
