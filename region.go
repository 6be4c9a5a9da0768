package buddy

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// acquireRegion mmaps a naturally-backed, zero-filled, anonymous region of
// exactly n bytes, private to the calling process. This is the one
// external collaborator the core touches (spec §1): backing-memory
// acquisition is assumed to yield a contiguous region and is otherwise out
// of the allocator's concern.
func acquireRegion(n uintptr) ([]byte, error) {
	return unix.Mmap(-1, 0, int(n), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
}

// releaseRegion unmaps the region starting at base spanning n bytes.
func releaseRegion(base, n uintptr) error {
	data := unsafe.Slice((*byte)(unsafe.Pointer(base)), n)
	return unix.Munmap(data)
}
