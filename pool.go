package buddy

import "unsafe"

// Init constructs pool: it picks the pool's max order, acquires a backing
// region of exactly 2^max_order bytes, and installs a single free block
// covering the whole region.
//
// size is rounded up to a power-of-two order via orderFor, then clamped
// into [MinK, MaxK-1] -- note the upper bound is MaxK-1, not MaxK; this
// matches the source this package was ported from and is intentional, not
// an off-by-one. A size of 0 requests DefaultK.
//
// Init fails only if the backing region cannot be mapped; the caller
// should treat a non-nil error as fatal, since the pool has no usable
// substrate without it (pool is left zeroed on failure).
func Init(pool *Pool, size uintptr) error {
	var kval uint
	if size == 0 {
		kval = DefaultK
	} else {
		kval = orderFor(size)
	}
	if kval < MinK {
		kval = MinK
	}
	if kval >= MaxK {
		kval = MaxK - 1
	}

	*pool = Pool{}
	pool.kvalM = kval
	pool.numBytes = uintptr(1) << kval

	data, err := acquireRegion(pool.numBytes)
	if err != nil {
		*pool = Pool{}
		return err
	}
	pool.base = uintptr(unsafe.Pointer(&data[0]))

	// every order gets a self-linked, UNUSED sentinel, even orders above
	// kvalM that will never hold a real block -- this keeps index math
	// uniform and matches invariant 5.
	for i := range pool.avail {
		pool.avail[i].next = &pool.avail[i]
		pool.avail[i].prev = &pool.avail[i]
		pool.avail[i].kval = uint8(i)
		pool.avail[i].tag = tagUnused
	}

	// the whole region starts as a single AVAIL block of order kvalM,
	// spliced into avail[kvalM] as its only member.
	first := (*Avail)(unsafe.Pointer(pool.base))
	first.tag = tagAvail
	first.kval = uint8(kval)
	insertBlock(&pool.avail[kval], first)

	return nil
}

// Destroy releases pool's backing region and zeroes the Pool value so it
// can be reused with a fresh Init. Destroy on a zero Pool is a no-op.
func Destroy(pool *Pool) error {
	if pool == nil || pool.base == 0 {
		return nil
	}
	if err := releaseRegion(pool.base, pool.numBytes); err != nil {
		return err
	}
	*pool = Pool{}
	return nil
}

// removeFirst detaches and returns head.next, or nil if the list is empty
// (head.next == head).
func removeFirst(head *Avail) *Avail {
	first := head.next
	if first == head {
		return nil
	}
	first.prev.next = first.next
	first.next.prev = first.prev
	first.next = nil
	first.prev = nil
	return first
}

// insertBlock splices block at the head of the circular list anchored at
// head: head <-> block <-> head.next(old).
func insertBlock(head *Avail, block *Avail) {
	block.next = head.next
	block.prev = head
	head.next.prev = block
	head.next = block
}

// removeBlock detaches block from whatever list it's currently linked
// into. Unlike removeFirst it doesn't need the head, since block carries
// its own prev/next.
func removeBlock(block *Avail) {
	block.prev.next = block.next
	block.next.prev = block.prev
	block.next = nil
	block.prev = nil
}
