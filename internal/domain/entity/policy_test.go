package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSumReductions(t *testing.T) {
	tests := []struct {
		name       string
		reductions []float64
		expected   float64
	}{
		{"none", nil, 0},
		{"loft and cavity", []float64{0.05, 0.10}, 0.15},
		{"everything", []float64{0.03, 0.05, 0.05, 0.10, 0.10, 0.15}, 0.48},
		{"custom over 100%", []float64{0.5, 0.9}, MaxEfficiencyBoost},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, SumReductions(tt.reductions), 1e-9)
		})
	}
}

func TestLookupMeasure(t *testing.T) {
	m, ok := LookupMeasure("solid-wall")
	assert.True(t, ok)
	assert.Equal(t, 0.15, m.Reduction)

	_, ok = LookupMeasure(CustomMeasureID)
	assert.False(t, ok)
}
