// Package statustext решает «оплачен / не оплачен» по человеко-читаемому
// тексту статуса (как в Excel), не полагаясь на жёсткие enum'ы.
//
// Базовые правила:
//   - статусы с «не оплачен», «оплачен частично», «частично оплачен» → не оплачено;
//   - статусы со словом «оплачен», не попавшие под правила выше → оплачено;
//   - всё остальное не даёт сигнала об оплате.
//
// Для обратной совместимости поддерживаются старые кодовые статусы JSON
// вроде "receivedPaid", "received", "received_unpaid".
package statustext

import "strings"

// Class представляет результат классификации текста статуса.
type Class int

const (
	// ClassUnknown — текст не даёт сигнала об оплате.
	ClassUnknown Class = iota
	// ClassPaid — статус считается оплаченным.
	ClassPaid
	// ClassUnpaid — статус явно не оплачен (в т.ч. частичная оплата).
	ClassUnpaid
)

// Vocabulary задаёт словарь классификатора. Фрагменты сравниваются
// без учёта регистра; кодовые статусы — после удаления пробелов и
// подчёркиваний.
type Vocabulary struct {
	Paid        string   // фрагмент «оплачен»
	NotPaid     string   // фрагмент «не оплачен»
	Partial     string   // фрагмент «част»
	PaidCodes   []string // старые кодовые статусы, означающие оплату
	UnpaidCodes []string // старые кодовые статусы без оплаты
}

// DefaultVocabulary возвращает словарь русскоязычных статусов из Excel.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Paid:        "оплачен",
		NotPaid:     "не оплачен",
		Partial:     "част",
		PaidCodes:   []string{"receivedpaid", "received"},
		UnpaidCodes: []string{"receivedunpaid", "inprogress", "intransit", "ready", "done"},
	}
}

// Normalize приводит сырой статус к строке для сравнения: обрезает пробелы.
func Normalize(raw string) string {
	return strings.TrimSpace(raw)
}

// normalizeCode убирает пробелы и подчёркивания для сравнения со старыми кодами.
func normalizeCode(lower string) string {
	var b strings.Builder
	for _, r := range lower {
		if r == '_' || r == ' ' || r == '\t' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Classify классифицирует текст статуса. Первая подошедшая проверка решает.
func (v Vocabulary) Classify(raw string) Class {
	text := Normalize(raw)
	if text == "" {
		return ClassUnknown
	}

	lower := strings.ToLower(text)

	// Явно не оплачено
	if strings.Contains(lower, v.NotPaid) {
		return ClassUnpaid
	}

	// Частичная оплата (есть и «оплач», и «част» в любом порядке)
	if strings.Contains(lower, v.Paid) && strings.Contains(lower, v.Partial) {
		return ClassUnpaid
	}

	// Любое другое упоминание «оплачен»
	if strings.Contains(lower, v.Paid) {
		return ClassPaid
	}

	// Обратная совместимость со старыми кодовыми статусами
	code := normalizeCode(lower)
	for _, paid := range v.PaidCodes {
		if code == paid {
			return ClassPaid
		}
	}
	for _, unpaid := range v.UnpaidCodes {
		if code == unpaid {
			return ClassUnpaid
		}
	}

	return ClassUnknown
}

// IsPaid сообщает, считается ли статус оплаченным с точки зрения денег.
// Отсутствие сигнала об оплате трактуется как «не оплачено».
func (v Vocabulary) IsPaid(raw string) bool {
	return v.Classify(raw) == ClassPaid
}

var defaultVocabulary = DefaultVocabulary()

// Classify классифицирует текст статуса словарём по умолчанию.
func Classify(raw string) Class {
	return defaultVocabulary.Classify(raw)
}

// IsPaidStatus определяет оплаченность статуса словарём по умолчанию.
func IsPaidStatus(raw string) bool {
	return defaultVocabulary.IsPaid(raw)
}
