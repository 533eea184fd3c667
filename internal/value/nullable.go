package value

import "math/rand"

// NullRate is the fixed Bernoulli probability at which a nullable generator
// emits Null, independently per call.
const NullRate = 0.10

// Nullable names the two allowed states of a generator's nullable gate:
// "required" (never emits Null spontaneously) or "nullable" (emits Null
// with probability NullRate at each generation).
type Nullable bool

const (
	Required Nullable = false
	IsNullable Nullable = true
)

// Bool reports whether the gate is in the nullable state.
func (n Nullable) Bool() bool { return bool(n) }

// RollNull runs the gate's Bernoulli trial: true means "emit Null this call".
func (n Nullable) RollNull(rng *rand.Rand) bool {
	if !n.Bool() {
		return false
	}
	return rng.Float64() < NullRate
}
