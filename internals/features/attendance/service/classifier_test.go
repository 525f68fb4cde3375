package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyLateReason(t *testing.T) {
	cases := []struct {
		name     string
		text     string
		category string
		score    int
	}{
		{"traffic jam", "Atasco en la avenida principal", "Tráfico", 95},
		{"traffic with accent", "Mucho tráfico en la Panamericana", "Tráfico", 95},
		{"traffic without accent", "demasiado trafico hoy", "Tráfico", 95},
		{"missed bus", "Perdí el bus de las 8", "Transporte", 92},
		{"medical appointment", "Tenía una cita médica", "Salud", 92},
		{"paperwork", "Trámite en el banco", "Documentos", 90},
		{"permission", "Pedí permiso ayer", "Permiso", 88},
		{"family", "Llevé a mi hijo al colegio", "Familiar", 88},
		{"no match", "se me hizo tarde", "Otros", 50},
		{"empty", "", "Otros", 50},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ClassifyLateReason(tc.text)
			assert.Equal(t, tc.category, got.Category)
			assert.Equal(t, tc.score, got.Score)
		})
	}
}

// A crash mentions both a vehicle and the crash itself; the earlier rule
// must win, not the longer or "better" match.
func TestClassifyLateReason_FirstMatchWins(t *testing.T) {
	got := ClassifyLateReason("Choque de mi auto en la vía")
	assert.Equal(t, "Tráfico", got.Category)
	assert.Equal(t, 95, got.Score)
}

func TestClassifyLateReason_Deterministic(t *testing.T) {
	const text = "Atasco en la avenida principal"
	first := ClassifyLateReason(text)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, ClassifyLateReason(text))
	}
}
