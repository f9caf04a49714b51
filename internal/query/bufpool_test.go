package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBytePool_GetPut(t *testing.T) {
	pool := NewBytePool(64)

	buf := pool.Get(32)
	assert.Len(t, buf, 32)
	assert.GreaterOrEqual(t, cap(buf), 64)
	pool.Put(buf)

	big := pool.Get(1024)
	assert.Len(t, big, 1024)
	pool.Put(big)

	pool.Put(nil)
}

// BenchmarkBytePool_Get — получение буфера из пула (hot path на каждый пакет)
func BenchmarkBytePool_Get(b *testing.B) {
	b.ReportAllocs()

	pool := NewBytePool(4096)

	b.ResetTimer()
	for range b.N {
		buf := pool.Get(4096)
		pool.Put(buf)
	}
}
