package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContains(t *testing.T) {
	ids := []string{"a", "b", "c"}
	assert.True(t, Contains(ids, "b"))
	assert.False(t, Contains(ids, "z"))
	assert.False(t, Contains(nil, "a"))
}

func TestRemove(t *testing.T) {
	ids := []string{"a", "b", "c", "b"}
	assert.Equal(t, []string{"a", "c"}, Remove(ids, "b"))
	assert.Equal(t, []string{"a", "c"}, Remove([]string{"a", "c"}, "z"))
}
