package mtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func indexDistance(values []int) func(i, j int) float64 {
	return func(i, j int) float64 {
		d := values[i] - values[j]
		if d < 0 {
			d = -d
		}
		return float64(d)
	}
}

func TestFirstTwoPromotion(t *testing.T) {
	i, j := FirstTwoPromotion(5, indexDistance([]int{10, 20, 30, 40, 50}))
	assert.Equal(t, 0, i)
	assert.Equal(t, 1, j)
}

func TestRandomPromotionDistinctIndices(t *testing.T) {
	for trial := 0; trial < 50; trial++ {
		i, j := RandomPromotion(6, indexDistance([]int{1, 2, 3, 4, 5, 6}))
		assert.NotEqual(t, i, j)
		assert.True(t, i >= 0 && i < 6)
		assert.True(t, j >= 0 && j < 6)
	}
}

func TestBalancedPartitionSplitsEvenly(t *testing.T) {
	values := []int{0, 1, 2, 3, 100, 101, 102, 103}
	distance := indexDistance(values)

	// p1 = index of 0 (value 0), p2 = index of 100 (value 100).
	remaining := []int{1, 2, 3, 5, 6, 7}
	part1, part2 := BalancedPartition(0, 4, remaining, distance)

	assert.ElementsMatch(t, []int{1, 2, 3}, part1)
	assert.ElementsMatch(t, []int{5, 6, 7}, part2)
}

func TestBalancedPartitionCoversAllRemaining(t *testing.T) {
	values := []int{10, 1, 2, 20, 3, 21, 22, 4}
	distance := indexDistance(values)
	remaining := []int{1, 2, 4, 5, 6, 7}

	part1, part2 := BalancedPartition(0, 3, remaining, distance)

	combined := append(append([]int(nil), part1...), part2...)
	assert.ElementsMatch(t, remaining, combined)
}

func TestSplitCacheMemoizesSymmetrically(t *testing.T) {
	values := []int{5, 9, 14}
	calls := 0
	underlying := func(a, b int) float64 {
		calls++
		d := a - b
		if d < 0 {
			d = -d
		}
		return float64(d)
	}

	cache := newSplitCache(values, underlying)
	assert.Equal(t, 4.0, cache.distance(0, 1))
	assert.Equal(t, 4.0, cache.distance(1, 0))
	assert.Equal(t, 1, calls, "second lookup in either order must be a cache hit")
}
