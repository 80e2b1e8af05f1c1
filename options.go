package mtree

// options holds the configuration assembled by a tree's functional options.
type options[T any] struct {
	maxCapacity int
	promotion   PromotionFunc
	partition   PartitionFunc
	logger      *Logger
	debugChecks bool
}

// Option configures a Tree constructed via New.
//
// Breaking changes are expected while the package surface settles.
type Option[T any] func(*options[T])

// WithMaxCapacity sets the maximum number of children/entries a node may
// hold before it must split. Defaults to 2*minCapacity-1, the smallest value
// that still lets an overflowing node (maxCapacity+1 children) split into
// two nodes each meeting minCapacity.
func WithMaxCapacity[T any](maxCapacity int) Option[T] {
	return func(o *options[T]) {
		o.maxCapacity = maxCapacity
	}
}

// WithPromotion overrides the default promotion strategy (uniform random
// sampling of two children) used to pick the pivots of a split.
func WithPromotion[T any](fn PromotionFunc) Option[T] {
	return func(o *options[T]) {
		o.promotion = fn
	}
}

// WithPartition overrides the default partition strategy (balanced,
// two-pre-sorted-vector admission) used to divide a split's children
// between the two promoted pivots.
func WithPartition[T any](fn PartitionFunc) Option[T] {
	return func(o *options[T]) {
		o.partition = fn
	}
}

// WithLogger configures structured logging for tree operations.
// Pass nil to disable logging.
func WithLogger[T any](logger *Logger) Option[T] {
	return func(o *options[T]) {
		o.logger = logger
	}
}

// WithDebugChecks enables Check to run automatically after every mutation.
// This is expensive (a full tree walk per Add/Remove) and intended for
// tests and development, not production use.
func WithDebugChecks[T any](enabled bool) Option[T] {
	return func(o *options[T]) {
		o.debugChecks = enabled
	}
}

func applyOptions[T any](minCapacity int, optFns []Option[T]) options[T] {
	o := options[T]{
		maxCapacity: 2*minCapacity - 1,
		promotion:   RandomPromotion,
		partition:   BalancedPartition,
		logger:      NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
