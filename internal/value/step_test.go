package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStepOrDefault(t *testing.T) {
	t.Run("no delta uses default", func(t *testing.T) {
		s := NewStep[int32](1, nil)
		assert.EqualValues(t, 1, s.StepOrDefault(1))
	})

	t.Run("explicit delta wins", func(t *testing.T) {
		s := NewStep[int32](1, ptr(int32(3)))
		assert.EqualValues(t, 3, s.StepOrDefault(1))
	})
}
