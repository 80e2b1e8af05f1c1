package testutil

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniformPoints(t *testing.T) {
	rng := NewRNG(4711)

	pts := rng.UniformPoints(8, 32)

	assert.Equal(t, 8, len(pts))
	assert.Equal(t, 32, len(pts[0]))
	assert.LessOrEqual(t, pts[0][0], 1.0)
	assert.GreaterOrEqual(t, pts[1][0], 0.0)
}

func TestWords(t *testing.T) {
	rng := NewRNG(4711)

	words := rng.Words(50, 3, 8)

	assert.Equal(t, 50, len(words))
	for _, w := range words {
		assert.GreaterOrEqual(t, len(w), 3)
		assert.LessOrEqual(t, len(w), 8)
	}
}

func TestReset(t *testing.T) {
	rng := NewRNG(4711)
	v1 := rng.UniformPoints(1, 10)

	rng.Reset()
	v2 := rng.UniformPoints(1, 10)

	assert.Equal(t, v1, v2)
}

func euclidean(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

func TestBruteForceSearch(t *testing.T) {
	rng := NewRNG(1)
	points := rng.UniformPoints(100, 4)
	query := points[0]

	results := BruteForceSearch(points, query, 5, euclidean)

	assert.Len(t, results, 5)
	assert.Equal(t, query, results[0].Item)
	assert.Equal(t, 0.0, results[0].Distance)
	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i].Distance, results[i-1].Distance)
	}
}

func intDistance(a, b int) float64 {
	if a == b {
		return 0
	}
	return 1
}

func TestComputeRecallPerfectMatch(t *testing.T) {
	truth := []SearchResult[int]{{Item: 1}, {Item: 2}, {Item: 3}}
	approx := []SearchResult[int]{{Item: 1}, {Item: 2}, {Item: 3}}

	assert.Equal(t, 1.0, ComputeRecall(truth, approx, intDistance))
}

func TestComputeRecallPartialMatch(t *testing.T) {
	truth := []SearchResult[int]{{Item: 1}, {Item: 2}, {Item: 3}}
	approx := []SearchResult[int]{{Item: 1}, {Item: 9}, {Item: 10}}

	assert.InDelta(t, 1.0/3.0, ComputeRecall(truth, approx, intDistance), 1e-9)
}

func TestLoadFixtureRoundTrip(t *testing.T) {
	records := []FixtureRecord{
		{Cmd: FixtureAdd, DataVec: []int{1, 2}, QueryVec: []int{0, 0}, Radius: 5, Limit: 3},
		{Cmd: FixtureRemove, DataVec: []int{1, 2}, QueryVec: []int{0, 0}, Radius: 0, Limit: 0},
	}

	var buf strings.Builder
	require.NoError(t, WriteFixture(&buf, 2, records))

	fixture, err := LoadFixture(strings.NewReader(buf.String()))
	require.NoError(t, err)

	assert.Equal(t, 2, fixture.Dims)
	require.Len(t, fixture.Records, 2)
	assert.Equal(t, records[0], fixture.Records[0])
	assert.Equal(t, records[1], fixture.Records[1])
}

func TestLoadFixtureRejectsMalformedRecord(t *testing.T) {
	src := "2\n1\nX 1 2 0 0 0 0\n"
	_, err := LoadFixture(strings.NewReader(src))
	assert.Error(t, err)
}

func TestLoadFixtureRejectsTruncatedFile(t *testing.T) {
	src := "2\n3\nA 1 2 0 0 0 0\n"
	_, err := LoadFixture(strings.NewReader(src))
	assert.Error(t, err)
}
