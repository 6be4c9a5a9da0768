package buddy

import (
	"fmt"
	"os"
	"unsafe"
)

// Malloc allocates at least userBytes bytes from pool and returns a
// pointer to the user-data portion (the header is hidden from the
// caller). It returns (nil, nil) if pool is nil or userBytes is 0 --
// spec.md §7 treats these as silent no-ops, not errors.
//
// On exhaustion Malloc returns (nil, ErrOutOfMemory); the caller can check
// errors.Is(err, unix.ENOMEM) just as much as errors.Is(err,
// ErrOutOfMemory).
func Malloc(pool *Pool, userBytes uint) (unsafe.Pointer, error) {
	if pool == nil || userBytes == 0 {
		return nil, nil
	}

	need := uintptr(userBytes) + headerSize
	k := orderFor(need)
	if k < SmallestK {
		k = SmallestK
	}

	// R1: search for the smallest non-empty list at or above k.
	idx := k
	for idx <= pool.kvalM && pool.avail[idx].next == &pool.avail[idx] {
		idx++
	}
	if idx > pool.kvalM {
		fmt.Fprintln(os.Stderr, "buddy: out of memory, no block available")
		return nil, ErrOutOfMemory
	}

	// R2: detach the head of avail[idx].
	block := removeFirst(&pool.avail[idx])

	// R3: split down to the target order, always carving the upper half
	// into the free list and keeping the lower half (the smaller-offset
	// buddy) for the caller -- this is what makes the returned address
	// deterministic.
	for idx > k {
		idx--
		upper := (*Avail)(unsafe.Pointer(uintptr(unsafe.Pointer(block)) + (uintptr(1) << idx)))
		upper.kval = uint8(idx)
		upper.tag = tagAvail
		insertBlock(&pool.avail[idx], upper)
		block.kval = uint8(idx)
	}

	// R4: commit.
	block.tag = tagReserved
	return unsafe.Pointer(uintptr(unsafe.Pointer(block)) + headerSize), nil
}
