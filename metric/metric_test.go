package metric

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEuclidean(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want float64
	}{
		{"identical", []float64{1, 2, 3}, []float64{1, 2, 3}, 0},
		{"3-4-5 triangle", []float64{0, 0}, []float64{3, 4}, 5},
		{"negative coords", []float64{-1, -1}, []float64{1, 1}, 2.8284271247461903},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Euclidean(tt.a, tt.b), 1e-9)
			assert.InDelta(t, Euclidean(tt.a, tt.b), Euclidean(tt.b, tt.a), 1e-9, "must be symmetric")
		})
	}
}

func TestEuclideanDimensionMismatchPanics(t *testing.T) {
	assert.Panics(t, func() {
		Euclidean([]float64{1, 2}, []float64{1, 2, 3})
	})
}

func TestManhattan(t *testing.T) {
	got := Manhattan([]float64{0, 0}, []float64{3, 4})
	assert.Equal(t, 7.0, got)
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"identical", "kitten", "kitten", 0},
		{"empty vs word", "", "abc", 3},
		{"classic example", "kitten", "sitting", 3},
		{"single substitution", "cat", "bat", 1},
		{"single insertion", "cat", "cart", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Levenshtein(tt.a, tt.b))
			assert.Equal(t, Levenshtein(tt.a, tt.b), Levenshtein(tt.b, tt.a), "must be symmetric")
		})
	}
}

func TestProvider(t *testing.T) {
	fn, err := Provider(Strings, "levenshtein")
	require.NoError(t, err)
	assert.Equal(t, 0.0, fn("same", "same"))

	_, err = Provider(Strings, "unknown")
	assert.Error(t, err)
}
