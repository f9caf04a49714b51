package effect

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestList_SnapshotIsCopy(t *testing.T) {
	l := NewList()
	l.Add(Instance{FormID: 1, Magnitude: -5})
	l.Add(Instance{FormID: 2, Magnitude: -7})

	snap := l.Snapshot()
	l.Update(func(inst *Instance) { inst.Magnitude = 0 })

	assert.Equal(t, float32(-5), snap[0].Magnitude)
	assert.Equal(t, float32(-7), snap[1].Magnitude)
	assert.Equal(t, float32(0), l.Snapshot()[0].Magnitude)
}

func TestList_Remove(t *testing.T) {
	l := NewList()
	l.Add(Instance{FormID: 1})
	l.Add(Instance{FormID: 2})
	l.Add(Instance{FormID: 1, Inactive: true})

	assert.Equal(t, 2, l.Remove(1))
	assert.Equal(t, 0, l.Remove(1))
	assert.Equal(t, 1, l.Len())
	assert.Equal(t, Snapshot{{FormID: 2}}, l.Snapshot())
}

func TestList_ConcurrentSnapshot(t *testing.T) {
	l := NewList()

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Go(func() {
			for j := range 100 {
				l.Add(Instance{FormID: uint32(i*1000 + j)})
				_ = l.Snapshot()
			}
		})
	}
	wg.Wait()

	assert.Equal(t, 800, l.Len())
}
