package buddy

import "unsafe"

// Free returns a pointer previously handed out by Malloc on the same pool.
// It is a no-op if pool is nil or ptr is nil. Freeing a foreign pointer or
// double-freeing is undefined behavior and is not diagnosed -- use
// FreeChecked if that needs to be caught instead.
func Free(pool *Pool, ptr unsafe.Pointer) {
	if pool == nil || ptr == nil {
		return
	}
	block := blockFromPtr(ptr)
	block.tag = tagAvail
	coalesce(pool, block)
}

// FreeChecked behaves like Free but first verifies ptr could plausibly
// have come from pool (in-bounds, header-aligned, currently reserved),
// returning an error instead of corrupting the pool on a caller mistake.
// This is the optional strengthening spec.md §9 allows but doesn't
// require; Free itself stays exactly as unchecked as the core contract
// describes.
func FreeChecked(pool *Pool, ptr unsafe.Pointer) error {
	if pool == nil || ptr == nil {
		return nil
	}
	addr := uintptr(ptr)
	if addr < pool.base+headerSize || addr >= pool.base+pool.numBytes {
		return errInvalidBlock
	}
	if (addr-headerSize-pool.base)&((uintptr(1)<<SmallestK)-1) != 0 {
		return errInvalidBlock
	}
	block := blockFromPtr(ptr)
	if block.tag != tagReserved {
		return errDoubleFree
	}
	block.tag = tagAvail
	coalesce(pool, block)
	return nil
}

func blockFromPtr(ptr unsafe.Pointer) *Avail {
	return (*Avail)(unsafe.Pointer(uintptr(ptr) - headerSize))
}

// coalesce repeatedly tries to merge block with its buddy, stopping when
// the buddy is reserved, itself further split (order mismatch), or block
// has reached the pool's max order. The final (possibly merged) block is
// spliced into its order's free list.
func coalesce(pool *Pool, block *Avail) {
	k := uint(block.kval)
	for k < pool.kvalM {
		buddy := BuddyOf(pool, block)
		if buddy.tag != tagAvail || uint(buddy.kval) != k {
			break
		}
		removeBlock(buddy)

		// the merged block's address is the lower of the two -- the
		// offset with the k-th bit cleared -- which is what keeps
		// invariant 1 true at the new, larger order.
		if uintptr(unsafe.Pointer(buddy)) < uintptr(unsafe.Pointer(block)) {
			block = buddy
		}
		k++
		block.kval = uint8(k)
	}
	insertBlock(&pool.avail[k], block)
}
