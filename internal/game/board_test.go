package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoard(t *testing.T) {
	b := NewBoard(6)

	assert.Equal(t, 6, b.Size())
	assert.Equal(t, []int{1, 2, 3, 4, 5}, b.Options())
	assert.Equal(t, 15, b.Score())

	b.Remove(2)
	b.Remove(5)
	assert.Equal(t, []int{1, 3, 4}, b.Remaining())
	assert.Equal(t, []int{1, 2, 3, 4, 5}, b.Options())
	assert.Equal(t, 8, b.Score())
	assert.Equal(t, map[int]bool{1: true, 2: false, 3: true, 4: true, 5: false}, b.State())

	b.Reset()
	assert.Equal(t, b.Options(), b.Remaining())
}

func TestBoardOutOfRange(t *testing.T) {
	b := NewBoard(4)

	assert.False(t, b.Available(0))
	assert.False(t, b.Available(4))
	assert.False(t, b.Available(-1))

	b.Remove(0)
	b.Remove(10)
	assert.Equal(t, []int{1, 2, 3}, b.Remaining())
}

func TestBoardCleared(t *testing.T) {
	b := NewBoard(3)
	assert.False(t, b.Cleared())
	b.Remove(1)
	assert.False(t, b.Cleared())
	b.Remove(2)
	assert.True(t, b.Cleared())
	assert.Empty(t, b.Remaining())
}
