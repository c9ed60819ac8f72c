package derive

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"atelier-backoffice/internal/domain"
	"atelier-backoffice/internal/statustext"
)

// GroupByStatusLabel группирует позиции по точному тексту статуса.
// Два по-разному написанных, но близких по смыслу статуса образуют
// две группы — это сознательно повторяет свободный ввод из Excel.
func GroupByStatusLabel(positions []domain.Position) map[string][]domain.Position {
	grouped := make(map[string][]domain.Position)
	for _, position := range positions {
		grouped[position.StatusLabel] = append(grouped[position.StatusLabel], position)
	}
	return grouped
}

// ToViewRows превращает партию в строки для отображения: позиции
// группируются по тексту статуса, группы упорядочиваются так:
//  1. неоплаченные группы раньше оплаченных;
//  2. внутри класса — большие группы раньше маленьких;
//  3. при равенстве — локальное сравнение текста статуса.
//
// Пустая партия даёт пустой результат.
func (d *Deriver) ToViewRows(batch domain.Batch) []domain.ViewRow {
	grouped := GroupByStatusLabel(batch.Positions)

	labels := make([]string, 0, len(grouped))
	for label := range grouped {
		labels = append(labels, label)
	}

	// Коллатор не потокобезопасен, поэтому создаётся на каждый вызов.
	collator := collate.New(language.Russian)
	sort.SliceStable(labels, func(i, j int) bool {
		paidI := d.vocab.IsPaid(labels[i])
		paidJ := d.vocab.IsPaid(labels[j])
		if paidI != paidJ {
			return !paidI
		}
		if len(grouped[labels[i]]) != len(grouped[labels[j]]) {
			return len(grouped[labels[i]]) > len(grouped[labels[j]])
		}
		return collator.CompareString(labels[i], labels[j]) < 0
	})

	rows := make([]domain.ViewRow, 0, len(labels))
	for _, label := range labels {
		rows = append(rows, domain.ViewRow{StatusLabel: label, Items: grouped[label]})
	}
	return rows
}

// HasUnclassified сообщает, есть ли среди позиций статусы, которым
// классификатор не может дать сигнала «оплачен / не оплачен».
func (d *Deriver) HasUnclassified(positions []domain.Position) bool {
	for _, position := range positions {
		if d.vocab.Classify(position.StatusLabel) == statustext.ClassUnknown {
			return true
		}
	}
	return false
}
