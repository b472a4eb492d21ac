package utils

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	result := Map([]int{1, 2, 3}, func(i int) string {
		return strconv.Itoa(i * 2)
	})
	assert.Equal(t, []string{"2", "4", "6"}, result)
}

func TestFilter(t *testing.T) {
	result := Filter([]int{1, 2, 3, 4}, func(i int) bool {
		return i%2 == 0
	})
	assert.Equal(t, []int{2, 4}, result)
}

func TestDeduplicateSlice(t *testing.T) {
	t.Run("should keep the first occurrence and preserve order", func(t *testing.T) {
		result := DeduplicateSlice([]string{"b", "a", "b", "c", "a"}, func(s string) string {
			return s
		})
		assert.Equal(t, []string{"b", "a", "c"}, result)
	})

	t.Run("should handle an empty slice", func(t *testing.T) {
		result := DeduplicateSlice([]string{}, func(s string) string {
			return s
		})
		assert.Empty(t, result)
	})
}

func TestOrDefault(t *testing.T) {
	assert.Equal(t, 42, OrDefault(nil, 42))
	assert.Equal(t, 7, OrDefault(Ptr(7), 42))
}
