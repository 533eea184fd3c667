package value

// Step is ValueStep<T>: an initial value and an optional increment. The
// increment-id generator does not use it; it reads its wire form,
// generator.IncrementSpec, directly.
type Step[T Ordered] struct {
	Initial T
	Delta   *T
}

// NewStep builds a Step. A nil delta means "use the generator's own default".
func NewStep[T Ordered](initial T, delta *T) Step[T] {
	return Step[T]{Initial: initial, Delta: delta}
}

// StepOrDefault returns the configured delta, or def if none was given.
func (s Step[T]) StepOrDefault(def T) T {
	if s.Delta == nil {
		return def
	}
	return *s.Delta
}
