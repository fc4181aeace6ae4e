package gallery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchReveal_Clamps(t *testing.T) {
	b := NewBatchReveal(30, 12, DefaultRevealMargin)
	require.Equal(t, 0, b.Shown())

	assert.True(t, b.RevealBatch())
	assert.Equal(t, 12, b.Shown())

	assert.True(t, b.RevealBatch())
	assert.True(t, b.RevealBatch())
	assert.Equal(t, 30, b.Shown())

	assert.False(t, b.RevealBatch(), "fully shown reveal must be a no-op")
	assert.Equal(t, 30, b.Shown())
}

func TestBatchReveal_Visibility(t *testing.T) {
	b := NewBatchReveal(5, 2, DefaultRevealMargin)
	b.RevealBatch()

	assert.True(t, b.Visible(0))
	assert.True(t, b.Visible(1))
	assert.False(t, b.Visible(2))
	assert.False(t, b.Visible(-1))
	assert.False(t, b.Visible(5))
}

func TestBatchReveal_LoadMore(t *testing.T) {
	b := NewBatchReveal(3, 2, DefaultRevealMargin)
	assert.Equal(t, LoadMoreState{Visible: true, Enabled: true}, b.LoadMore())

	b.RevealBatch()
	assert.Equal(t, LoadMoreState{Visible: true, Enabled: true}, b.LoadMore())

	b.RevealBatch()
	assert.Equal(t, LoadMoreState{}, b.LoadMore())
}

func TestBatchReveal_EnsureRevealed(t *testing.T) {
	b := NewBatchReveal(30, 12, DefaultRevealMargin)
	b.RevealBatch()

	assert.False(t, b.EnsureRevealed(11))
	assert.Equal(t, 12, b.Shown())

	assert.True(t, b.EnsureRevealed(12))
	assert.Equal(t, 24, b.Shown())

	assert.True(t, b.EnsureRevealed(29))
	assert.Equal(t, 30, b.Shown())
}

func TestBatchReveal_Observe(t *testing.T) {
	tests := []struct {
		name     string
		distance int
		expected int
	}{
		{"far away", 301, 0},
		{"at margin", 300, 4},
		{"inside viewport", -20, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBatchReveal(10, 4, 300)
			b.Observe(tt.distance)
			assert.Equal(t, tt.expected, b.Shown())
		})
	}
}

func TestBatchReveal_Defaults(t *testing.T) {
	b := NewBatchReveal(40, 0, -1)
	assert.Equal(t, DefaultBatchSize, b.BatchSize())
	assert.Equal(t, DefaultRevealMargin, b.Margin())
}
