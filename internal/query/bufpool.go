package query

import "sync"

// BytePool is a pool of reusable []byte buffers for connection reads and
// reply frames.
type BytePool struct {
	pool sync.Pool
}

// NewBytePool creates a buffer pool with the specified default capacity for new slices.
func NewBytePool(defaultCap int) *BytePool {
	p := &BytePool{}
	p.pool.New = func() any {
		b := make([]byte, 0, defaultCap)
		return &b
	}
	return p
}

// Get returns a slice of length size, preferably from the pool.
// Contents are not cleared: callers overwrite before reading.
func (p *BytePool) Get(size int) []byte {
	bp := p.pool.Get().(*[]byte)
	if cap(*bp) < size {
		p.pool.Put(bp)
		return make([]byte, size)
	}
	return (*bp)[:size]
}

// Put returns the slice to the pool for reuse.
func (p *BytePool) Put(b []byte) {
	if b == nil {
		return
	}
	b = b[:0]
	p.pool.Put(&b)
}
