// Package format отвечает за отображение данных: форматирование валют
// и карту подписей/иконок для статусов.
package format

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// thinSpace — тонкий пробел-разделитель разрядов: $45 970.
const thinSpace = '\u2009'

var printer = message.NewPrinter(language.Russian)

// groupDigits возвращает число с локальной группировкой разрядов,
// заменяя пробельные разделители на тонкий пробел.
func groupDigits(d decimal.Decimal) string {
	f, _ := d.Float64()
	grouped := printer.Sprint(number.Decimal(f, number.MaxFractionDigits(6)))
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return thinSpace
		}
		return r
	}, grouped)
}

// Currency форматирует сумму в долларах с тонким пробелом: $45 970.
// Дробная часть передаётся локальному форматтеру как есть.
func Currency(amount decimal.Decimal) string {
	return "$" + groupDigits(amount)
}

// CurrencyRub форматирует сумму в рублях, предварительно округляя
// до целого: ₽1 234 567.
func CurrencyRub(amount decimal.Decimal) string {
	return "₽" + groupDigits(amount.Round(0))
}

// --- Статусы ---

// DefaultStatusLabel — подпись по умолчанию для позиции без статуса.
const DefaultStatusLabel = "в производстве"

// FallbackStatusIcon — иконка для нераспознанного текста статуса.
const FallbackStatusIcon = "📦"

// legacyLabels сопоставляет старые кодовые статусы канонической подписи.
// Ключ — код после приведения к нижнему регистру без пробелов и подчёркиваний.
var legacyLabels = map[string]string{
	"inproduction":   "в производстве",
	"inprogress":     "в производстве",
	"intransit":      "уже в пути",
	"receivedunpaid": "получено, без оплаты",
	"ready":          "готов",
	"done":           "готов",
	"paid":           "оплачено",
	"received":       "оплачено",
	"receivedpaid":   "оплачено",
	"paidearlier":    "оплачено ранее",
	"returned":       "вернулись после ремонта",
}

// labelIcons сопоставляет канонические подписи иконкам.
var labelIcons = map[string]string{
	"в производстве":          "🛠️",
	"уже в пути":              "🚚",
	"получено, без оплаты":    "📦",
	"готов":                   "✅",
	"оплачено":                "💵",
	"оплачено ранее":          "☑️",
	"вернулись после ремонта": "♻️",
}

func normalizeCode(raw string) string {
	lower := strings.ToLower(strings.TrimSpace(raw))
	return strings.Map(func(r rune) rune {
		if r == '_' || r == ' ' {
			return -1
		}
		return r
	}, lower)
}

// StatusLabel возвращает подпись статуса: старые кодовые статусы
// сводятся к канонической подписи, произвольный текст из Excel
// проходит один в один, пустой статус получает подпись по умолчанию.
func StatusLabel(raw string) string {
	text := strings.TrimSpace(raw)
	if text == "" {
		return DefaultStatusLabel
	}
	if label, ok := legacyLabels[normalizeCode(text)]; ok {
		return label
	}
	return text
}

// StatusIcon возвращает иконку для статуса, FallbackStatusIcon — для
// нераспознанного текста.
func StatusIcon(raw string) string {
	label := StatusLabel(raw)
	if icon, ok := labelIcons[label]; ok {
		return icon
	}
	return FallbackStatusIcon
}
