package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterleavePreservesLength(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3, 4, 5, 7, 10} {
		in := make([]int, n)
		for i := range in {
			in[i] = i
		}
		out, err := Interleave(in)
		require.NoError(t, err)
		assert.Len(t, out, n, "N=%d", n)
	}
}

func TestInterleaveAlternatesHalves(t *testing.T) {
	out, err := Interleave([]string{"A", "B", "C", "D", "E"})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "D", "B", "E", "C"}, out)
}

func TestInterleaveEvenInput(t *testing.T) {
	out, err := Interleave([]int{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 2, 4}, out)
}

func TestInterleaveKeepsEveryEntry(t *testing.T) {
	in := []int{9, 8, 7, 6, 5, 4, 3}
	out, err := Interleave(in)
	require.NoError(t, err)

	seen := map[int]bool{}
	for _, v := range out {
		seen[v] = true
	}
	for _, v := range in {
		assert.True(t, seen[v], "entry %d missing from output", v)
	}
}
