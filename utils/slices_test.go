package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetSortedKeys(t *testing.T) {
	m := map[int]int{1: 1, 3: 3, 2: 2}
	require.Equal(t, []int{1, 2, 3}, GetSortedKeys(m))
	m = map[int]int{-1: 1, -3: 3, -2: 2}
	require.Equal(t, []int{-3, -2, -1}, GetSortedKeys(m))
	require.Equal(t, []string{"CRT", "Standard"}, GetSortedKeys(map[string]bool{"Standard": true, "CRT": true}))
}

func TestChunks(t *testing.T) {

	s := []int{1, 2, 3, 4, 5}

	require.Equal(t, [][]int{{1, 2}, {3, 4}, {5}}, Chunks(s, 2))
	require.Equal(t, [][]int{{1, 2, 3, 4, 5}}, Chunks(s, 5))
	require.Equal(t, [][]int{{1, 2, 3, 4, 5}}, Chunks(s, 8))
	require.Empty(t, Chunks([]int{}, 3))

	t.Run("Capped", func(t *testing.T) {
		// appending to a chunk must not overwrite the next one
		c := Chunks(s, 2)
		_ = append(c[0], 42)
		require.Equal(t, 3, s[2])
	})

	require.Panics(t, func() { Chunks(s, 0) })
}
