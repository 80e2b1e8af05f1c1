package mtree

import "sort"

// PromotionFunc picks the indices of two of n candidates to act as the
// pivots of a split. distance reports the distance between candidates i
// and j, memoized for the lifetime of the split. The returned indices must
// be distinct and in [0, n).
type PromotionFunc func(n int, distance func(i, j int) float64) (first, second int)

// PartitionFunc divides remaining (indices into the same candidate list as
// PromotionFunc saw, excluding the two promoted pivots at indices p1, p2)
// between the two pivots.
type PartitionFunc func(p1, p2 int, remaining []int, distance func(i, j int) float64) (part1, part2 []int)

// RandomPromotion samples two distinct candidate indices uniformly at
// random. This is the default promotion strategy.
func RandomPromotion(n int, distance func(i, j int) float64) (int, int) {
	i := randIntn(n)
	j := randIntn(n - 1)
	if j >= i {
		j++
	}
	return i, j
}

// FirstTwoPromotion deterministically promotes the first two candidates in
// iteration order. It exists for tests that need reproducible tree shapes;
// production code should use the default RandomPromotion.
func FirstTwoPromotion(n int, distance func(i, j int) float64) (int, int) {
	return 0, 1
}

// BalancedPartition assigns remaining to p1 or p2 by alternately admitting
// from two copies of remaining, each pre-sorted by distance to its
// respective pivot: the closest-to-p1 unclaimed candidate goes to part1,
// then the closest-to-p2 unclaimed candidate goes to part2, and so on.
// This keeps the two resulting partitions close in size regardless of how
// the data clusters around the pivots.
func BalancedPartition(p1, p2 int, remaining []int, distance func(i, j int) float64) (part1, part2 []int) {
	queue1 := append([]int(nil), remaining...)
	queue2 := append([]int(nil), remaining...)

	sort.SliceStable(queue1, func(i, j int) bool {
		return distance(p1, queue1[i]) < distance(p1, queue1[j])
	})
	sort.SliceStable(queue2, func(i, j int) bool {
		return distance(p2, queue2[i]) < distance(p2, queue2[j])
	})

	in1 := make(map[int]bool, len(remaining))
	in2 := make(map[int]bool, len(remaining))

	for len(queue1) > 0 || len(queue2) > 0 {
		for len(queue1) > 0 {
			d := queue1[0]
			queue1 = queue1[1:]
			if !in2[d] {
				part1 = append(part1, d)
				in1[d] = true
				break
			}
		}
		for len(queue2) > 0 {
			d := queue2[0]
			queue2 = queue2[1:]
			if !in1[d] {
				part2 = append(part2, d)
				in2[d] = true
				break
			}
		}
	}
	return part1, part2
}

// splitCache memoizes distance(i, j) over a fixed candidate list for the
// lifetime of a single split, since promotion and partition both
// repeatedly measure distances between the same small set of candidates.
// It is keyed by candidate index rather than candidate value, so it works
// regardless of whether T itself is comparable. Both orderings of a pair
// are stored on a cache miss, so a later lookup in either order is a
// single map read.
type splitCache[T any] struct {
	values     []T
	underlying DistanceFunc[T]
	cache      map[[2]int]float64
}

func newSplitCache[T any](values []T, d DistanceFunc[T]) *splitCache[T] {
	return &splitCache[T]{values: values, underlying: d, cache: make(map[[2]int]float64)}
}

func (c *splitCache[T]) distance(i, j int) float64 {
	if v, ok := c.cache[[2]int{i, j}]; ok {
		return v
	}
	v := c.underlying(c.values[i], c.values[j])
	c.cache[[2]int{i, j}] = v
	c.cache[[2]int{j, i}] = v
	return v
}
