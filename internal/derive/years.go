package derive

import (
	"regexp"
	"sort"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"atelier-backoffice/internal/domain"
)

// trailingYear выделяет четырёхзначный год в конце даты вида "04.11.2025".
var trailingYear = regexp.MustCompile(`(\d{4})\s*$`)

// ShipmentYear определяет год партии: явное поле year, иначе год из
// конца receivedDate, иначе текущий календарный год.
func ShipmentYear(shipment domain.ShipmentWithItems, now time.Time) int {
	if shipment.Year != nil {
		return *shipment.Year
	}
	if match := trailingYear.FindStringSubmatch(shipment.ReceivedDate); match != nil {
		if year, err := strconv.Atoi(match[1]); err == nil {
			return year
		}
	}
	return now.Year()
}

// GroupShipmentsByYear раскладывает партии по годам. Годы идут по
// убыванию, партии внутри года сохраняют порядок входа. Для каждого
// года считается оборот — сумма totalAmount его партий.
func GroupShipmentsByYear(shipments []domain.ShipmentWithItems, now time.Time) []domain.YearGroup {
	byYear := make(map[int]*domain.YearGroup)
	years := make([]int, 0)

	for _, shipment := range shipments {
		year := ShipmentYear(shipment, now)
		group, ok := byYear[year]
		if !ok {
			group = &domain.YearGroup{Year: year, Turnover: decimal.Zero}
			byYear[year] = group
			years = append(years, year)
		}
		group.Shipments = append(group.Shipments, shipment)
		group.Turnover = group.Turnover.Add(shipment.TotalAmount)
	}

	sort.Sort(sort.Reverse(sort.IntSlice(years)))

	groups := make([]domain.YearGroup, 0, len(years))
	for _, year := range years {
		groups = append(groups, *byYear[year])
	}
	return groups
}
