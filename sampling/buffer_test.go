package sampling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RyanBlaney/fxdsp/algorithms/fixed"
)

func TestBufferZeroValue(t *testing.T) {
	var b Buffer
	assert.True(t, b.Empty())
	assert.False(t, b.Full())
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, BufferSize-1, b.Free())
}

func TestBufferPushPopOrder(t *testing.T) {
	var b Buffer
	for i := fixed.Q15(1); i <= 5; i++ {
		b.Push(i * 100)
	}
	assert.Equal(t, 5, b.Len())
	for i := fixed.Q15(1); i <= 5; i++ {
		assert.Equal(t, i*100, b.Pop())
	}
	assert.True(t, b.Empty())
}

func TestBufferFull(t *testing.T) {
	var b Buffer
	for i := 0; i < BufferSize-1; i++ {
		b.Push(fixed.Q15(i))
	}
	assert.True(t, b.Full())
	assert.Equal(t, 0, b.Free())
	assert.Equal(t, BufferSize-1, b.Len())
}

func TestBufferPushAllTransactional(t *testing.T) {
	var b Buffer
	block := make([]fixed.Q15, 100)

	assert.Equal(t, 100, b.PushAll(block))
	assert.Equal(t, 100, b.PushAll(block))
	assert.Equal(t, 200, b.Len())

	// Only 55 slots remain; a third block of 100 must not partially land.
	assert.Equal(t, 0, b.PushAll(block))
	assert.Equal(t, 200, b.Len())

	// A block that exactly fits still goes through.
	assert.Equal(t, 55, b.PushAll(block[:55]))
	assert.True(t, b.Full())
}

func TestBufferPopAllTransactional(t *testing.T) {
	var b Buffer
	for i := 0; i < 10; i++ {
		b.Push(fixed.Q15(i))
	}

	// Asking for more than is stored delivers nothing, not a prefix.
	dst := make([]fixed.Q15, 11)
	assert.Equal(t, 0, b.PopAll(dst))
	assert.Equal(t, 10, b.Len())

	dst = dst[:10]
	require.Equal(t, 10, b.PopAll(dst))
	for i := range dst {
		assert.Equal(t, fixed.Q15(i), dst[i])
	}
	assert.True(t, b.Empty())
}

func TestBufferCursorWraparound(t *testing.T) {
	// Stream ten full windows through the ring so the byte cursors wrap
	// several times; order must survive every wrap.
	var b Buffer
	next := fixed.Q15(0)
	window := make([]fixed.Q15, 200)

	for round := 0; round < 10; round++ {
		for i := range window {
			window[i] = next
			next++
		}
		require.Equal(t, len(window), b.PushAll(window), "round %d", round)

		got := make([]fixed.Q15, len(window))
		require.Equal(t, len(got), b.PopAll(got), "round %d", round)
		assert.Equal(t, window, got, "round %d", round)
	}
}
