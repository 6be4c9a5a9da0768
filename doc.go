// Package buddy implements a binary buddy memory allocator over a single
// mmap'd region of virtual memory.
//
// A Pool owns one region of exactly 2^K bytes and serves allocation
// requests by splitting power-of-two blocks on demand and coalescing freed
// buddies back together on Free. The region's base is only page-aligned;
// block alignment is measured from the base, so a block of order k starts
// at an offset that is a multiple of 2^k. The algorithm, the free
// list layout, and the buddy-address XOR trick are all classic buddy-system
// design; see Knuth vol. 1 §2.5 for the general technique.
//
// Pool is not safe for concurrent use. All calls against a given Pool must
// be externally serialized by the caller; there is no locking inside this
// package.
package buddy
