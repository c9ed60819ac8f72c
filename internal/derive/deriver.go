// Package derive содержит чистые преобразования авторской конфигурации
// партий и каталога в отображаемые доменные сущности: позиции, партии,
// строки таблицы и группы по годам. Все функции детерминированы (кроме
// генерации суррогатных ID), не делают I/O и пересчитываются при каждом
// чтении — набор данных мал, кэширование не требуется для корректности.
package derive

import (
	"atelier-backoffice/internal/domain"
	"atelier-backoffice/internal/statustext"
)

// Options задаёт поведение адаптера для неоднозначных случаев конфигурации.
type Options struct {
	// FallbackSize — размер-корзина для меток, не входящих в перечисление.
	// Граница загрузки может вместо этого отклонять такие метки (strict).
	FallbackSize domain.Size
}

// DefaultOptions повторяет наблюдаемое поведение исходных данных:
// неизвестные размеры попадают в корзину S.
func DefaultOptions() Options {
	return Options{FallbackSize: domain.SizeS}
}

// Deriver выполняет преобразования с фиксированным словарём статусов
// и настройками. Безопасен для конкурентного использования.
type Deriver struct {
	vocab statustext.Vocabulary
	opts  Options
}

// NewDeriver создаёт Deriver. Пустой размер-корзина заменяется значением
// по умолчанию.
func NewDeriver(vocab statustext.Vocabulary, opts Options) *Deriver {
	if !opts.FallbackSize.IsValid() {
		opts.FallbackSize = DefaultOptions().FallbackSize
	}
	return &Deriver{vocab: vocab, opts: opts}
}

// Vocabulary возвращает словарь статусов, с которым работает Deriver.
func (d *Deriver) Vocabulary() statustext.Vocabulary {
	return d.vocab
}
