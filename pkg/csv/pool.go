package csv

import "sync"

// bufferPool recycles []byte buffers used while encoding rows. Encoding
// happens once per row on the hot write path, so reusing the line buffer
// avoids one allocation per row.
var bufferPool = sync.Pool{
	New: func() interface{} {
		// Capacity for a typical encoded line.
		b := make([]byte, 0, 128)
		return &b
	},
}

// getBuffer gets an empty buffer from the pool.
func getBuffer() []byte {
	p := bufferPool.Get().(*[]byte)
	return (*p)[:0]
}

// putBuffer returns a buffer to the pool. Oversized buffers are dropped so
// one huge row does not pin memory for the life of the pool.
func putBuffer(buf []byte) {
	const maxCapacity = 64 * 1024
	if cap(buf) > maxCapacity {
		return
	}
	buf = buf[:0]
	bufferPool.Put(&buf)
}
