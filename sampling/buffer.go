// Package sampling defines the boundary between the numeric core and
// whatever produces samples: a fixed-capacity circular buffer with
// transactional bulk transfer, a Source capability for streaming
// acquisition, and a host-side synthesized source for tests and tooling.
//
// The numeric core never touches hardware; it only consumes ordered,
// finite runs of Q15 samples obtained through this package's contracts.
package sampling

import "github.com/RyanBlaney/fxdsp/algorithms/fixed"

// BufferSize is the fixed ring capacity. Holding it at 256 lets the in/out
// cursors be single bytes whose natural wraparound replaces all modulo
// arithmetic on indexes.
const BufferSize = 256

// Buffer is a single-producer single-consumer ring of Q15 samples.
//
// One slot of the 256 is sacrificed to distinguish full from empty, so the
// usable capacity is BufferSize-1. The zero value is an empty, ready buffer.
type Buffer struct {
	buf     [BufferSize]fixed.Q15
	in, out uint8
}

// Len returns the number of samples currently stored.
func (b *Buffer) Len() int {
	return int(b.in - b.out)
}

// Free returns the number of slots available for pushing.
//
// Derived from the cursor identity (BufferSize-1) - (in-out) = ^in + out
// in byte arithmetic.
func (b *Buffer) Free() int {
	return int(^b.in + b.out)
}

// Empty reports whether the buffer holds no samples.
func (b *Buffer) Empty() bool {
	return b.in == b.out
}

// Full reports whether the buffer has no free slots.
func (b *Buffer) Full() bool {
	return ^b.in+b.out == 0
}

// Push appends one sample. The caller must ensure the buffer is not full;
// pushing into a full buffer overwrites the oldest unread sample.
func (b *Buffer) Push(s fixed.Q15) {
	b.buf[b.in] = s
	b.in++
}

// Pop removes and returns the oldest sample. The caller must ensure the
// buffer is not empty; popping an empty buffer returns stale data.
func (b *Buffer) Pop() fixed.Q15 {
	s := b.buf[b.out]
	b.out++
	return s
}

// PushAll appends len(src) samples if and only if that many slots are free.
// It returns the count pushed: len(src), or 0 with the buffer untouched.
// There is never a partial transfer.
func (b *Buffer) PushAll(src []fixed.Q15) int {
	if b.Free() < len(src) {
		return 0
	}
	for _, s := range src {
		b.Push(s)
	}
	return len(src)
}

// PopAll fills dst with the oldest len(dst) samples if and only if that many
// are stored. It returns the count popped: len(dst), or 0 with the buffer
// untouched. There is never a partial transfer, so a consumer always sees a
// complete, contiguous acquisition run.
func (b *Buffer) PopAll(dst []fixed.Q15) int {
	if b.Len() < len(dst) {
		return 0
	}
	for i := range dst {
		dst[i] = b.Pop()
	}
	return len(dst)
}
