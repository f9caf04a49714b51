package effect

import "sync"

// Instance is one running effect on a character as the engine tracks it:
// the base definition handle, the current magnitude, and its run flags.
type Instance struct {
	FormID    uint32  `yaml:"form_id"`
	Magnitude float32 `yaml:"magnitude"`
	Inactive  bool    `yaml:"inactive"`
	Dispelled bool    `yaml:"dispelled"`
}

// Snapshot is a stable, caller-owned copy of a character's active effects,
// in the order the engine lists them.
type Snapshot []Instance

// List holds the live active effects of one character.
// The simulation mutates it; readers take a Snapshot.
//
// Thread-safe: all methods are protected by sync.RWMutex.
type List struct {
	mu      sync.RWMutex
	effects []Instance
}

// NewList creates an empty List.
func NewList() *List {
	return &List{effects: make([]Instance, 0, 8)}
}

// Add appends an instance.
func (l *List) Add(inst Instance) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.effects = append(l.effects, inst)
}

// Remove drops every instance of formID. Returns the number removed.
func (l *List) Remove(formID uint32) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	kept := l.effects[:0]
	removed := 0
	for _, inst := range l.effects {
		if inst.FormID == formID {
			removed++
			continue
		}
		kept = append(kept, inst)
	}
	clear(l.effects[len(kept):])
	l.effects = kept
	return removed
}

// Update applies fn to each instance in place under the write lock.
func (l *List) Update(fn func(*Instance)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.effects {
		fn(&l.effects[i])
	}
}

// Len returns the number of instances.
func (l *List) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.effects)
}

// Snapshot returns a copy safe to read without holding the lock.
func (l *List) Snapshot() Snapshot {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make(Snapshot, len(l.effects))
	copy(out, l.effects)
	return out
}
