package generics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAbs(t *testing.T) {
	assert.Equal(t, 3, Abs(-3))
	assert.Equal(t, 3, Abs(3))
	assert.Equal(t, int8(0), Abs(int8(0)))
	assert.Equal(t, 2.5, Abs(-2.5))
}

func TestSortedKeys(t *testing.T) {
	m := map[string]int{"c": 1, "a": 5, "b": 3}
	// Map iteration in Go is deliberately non-deterministic, so run it a bunch of times.
	for range 100 {
		assert.Equal(t, []string{"a", "b", "c"}, SortedKeys(m))
	}
}
