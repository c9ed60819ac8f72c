package derive_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atelier-backoffice/internal/derive"
	"atelier-backoffice/internal/domain"
)

func positionsWithStatuses(labels ...string) []domain.Position {
	positions := make([]domain.Position, 0, len(labels))
	for _, label := range labels {
		positions = append(positions, domain.Position{StatusLabel: label})
	}
	return positions
}

func rowLabels(rows []domain.ViewRow) []string {
	labels := make([]string, 0, len(rows))
	for _, row := range rows {
		labels = append(labels, row.StatusLabel)
	}
	return labels
}

func TestGroupByStatusLabel_ExactTextOnly(t *testing.T) {
	grouped := derive.GroupByStatusLabel(positionsWithStatuses(
		"оплачен", "оплачен 15.03", "оплачен",
	))

	require.Len(t, grouped, 2, "разное написание — разные группы")
	assert.Len(t, grouped["оплачен"], 2)
	assert.Len(t, grouped["оплачен 15.03"], 1)
}

func TestToViewRows_EmptyBatch(t *testing.T) {
	d := newTestDeriver()

	rows := d.ToViewRows(domain.Batch{ID: "empty"})

	assert.Empty(t, rows)
}

func TestToViewRows_UnpaidGroupsFirst(t *testing.T) {
	d := newTestDeriver()

	tests := []struct {
		name     string
		statuses []string
		want     []string
	}{
		{
			name:     "оплаченные уходят вниз",
			statuses: []string{"оплачен", "не оплачен", "оплачен 15.03"},
			want:     []string{"не оплачен", "оплачен", "оплачен 15.03"},
		},
		{
			name:     "частичная оплата считается неоплаченной",
			statuses: []string{"оплачен", "оплачен частично"},
			want:     []string{"оплачен частично", "оплачен"},
		},
		{
			name:     "в производстве раньше оплаченных",
			statuses: []string{"оплачен", "в производстве", "в производстве"},
			want:     []string{"в производстве", "оплачен"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := d.ToViewRows(domain.Batch{Positions: positionsWithStatuses(tt.statuses...)})
			assert.Equal(t, tt.want, rowLabels(rows))
		})
	}
}

func TestToViewRows_LargerGroupsFirstWithinClass(t *testing.T) {
	d := newTestDeriver()

	rows := d.ToViewRows(domain.Batch{Positions: positionsWithStatuses(
		"готов", "уже в пути", "уже в пути", "уже в пути", "готов",
	)})

	assert.Equal(t, []string{"уже в пути", "готов"}, rowLabels(rows))
}

func TestToViewRows_CollationBreaksTies(t *testing.T) {
	d := newTestDeriver()

	// Группы одного класса и размера упорядочиваются по алфавиту
	rows := d.ToViewRows(domain.Batch{Positions: positionsWithStatuses(
		"уже в пути", "готов", "в производстве",
	)})

	assert.Equal(t, []string{"в производстве", "готов", "уже в пути"}, rowLabels(rows))
}

func TestToViewRows_KeepsPositionsInsideGroup(t *testing.T) {
	d := newTestDeriver()
	positions := []domain.Position{
		{ProductID: "a", StatusLabel: "готов"},
		{ProductID: "b", StatusLabel: "готов"},
	}

	rows := d.ToViewRows(domain.Batch{Positions: positions})

	require.Len(t, rows, 1)
	require.Len(t, rows[0].Items, 2)
	assert.Equal(t, "a", rows[0].Items[0].ProductID)
	assert.Equal(t, "b", rows[0].Items[1].ProductID)
}

func TestHasUnclassified(t *testing.T) {
	d := newTestDeriver()

	assert.False(t, d.HasUnclassified(positionsWithStatuses("оплачен", "не оплачен")))
	assert.True(t, d.HasUnclassified(positionsWithStatuses("оплачен", "жду примерку")))
	assert.False(t, d.HasUnclassified(nil))
}
