package buddy

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

// checkPoolFull asserts the P4 full-pool shape: avail[kvalM] holds exactly
// one block at base, every other order is an empty, self-linked UNUSED
// sentinel.
func checkPoolFull(t *testing.T, pool *Pool) {
	t.Helper()
	for i := uint(0); i < pool.kvalM; i++ {
		head := &pool.avail[i]
		assert.Equal(t, head, head.next, "avail[%d].next not self", i)
		assert.Equal(t, head, head.prev, "avail[%d].prev not self", i)
		assert.Equal(t, tagUnused, head.tag, "avail[%d] not UNUSED", i)
		assert.Equal(t, uint8(i), head.kval, "avail[%d].kval wrong", i)
	}

	tail := &pool.avail[pool.kvalM]
	assert.Equal(t, tagAvail, tail.next.tag)
	assert.Equal(t, tail, tail.next.next)
	assert.Equal(t, tail, tail.prev.prev)
	assert.Equal(t, tail.next, (*Avail)(unsafe.Pointer(pool.base)))
}

// checkPoolEmpty asserts the fully-allocated shape: every order
// (including kvalM) is an empty UNUSED sentinel, so no free block remains.
func checkPoolEmpty(t *testing.T, pool *Pool) {
	t.Helper()
	for i := uint(0); i <= pool.kvalM; i++ {
		head := &pool.avail[i]
		assert.Equal(t, head, head.next, "avail[%d].next not self", i)
		assert.Equal(t, head, head.prev, "avail[%d].prev not self", i)
		assert.Equal(t, tagUnused, head.tag, "avail[%d] not UNUSED", i)
		assert.Equal(t, uint8(i), head.kval, "avail[%d].kval wrong", i)
	}
}
