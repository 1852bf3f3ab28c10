package sim

// Handle refers to one slot of a Pool. A handle goes stale once its
// entity is removed, even if the slot is later reused.
type Handle struct {
	index uint32
	gen   uint32
}

type slot[T any] struct {
	val   T
	gen   uint32
	alive bool
}

// Pool is an index-stable arena for one entity kind. Slots are allocated
// once and reused through a free list, so pointers handed out by Get and
// Each stay valid while other entities are added. Iteration follows
// insertion order.
type Pool[T any] struct {
	slots []*slot[T]
	free  []uint32
	order []Handle
	live  int
	depth int
	dirty bool
}

// Add stores v and returns its handle.
func (p *Pool[T]) Add(v T) Handle {
	var idx uint32
	if n := len(p.free); n > 0 {
		idx = p.free[n-1]
		p.free = p.free[:n-1]
	} else {
		idx = uint32(len(p.slots))
		p.slots = append(p.slots, &slot[T]{})
	}
	s := p.slots[idx]
	s.val = v
	s.gen++
	s.alive = true

	h := Handle{index: idx, gen: s.gen}
	p.order = append(p.order, h)
	p.live++
	return h
}

// Remove frees the entity behind h. Removing a stale handle is a no-op.
func (p *Pool[T]) Remove(h Handle) bool {
	s := p.lookup(h)
	if s == nil {
		return false
	}
	var zero T
	s.val = zero
	s.alive = false
	p.free = append(p.free, h.index)
	p.live--
	p.dirty = true
	if p.depth == 0 {
		p.compact()
	}
	return true
}

// Get returns the entity behind h.
func (p *Pool[T]) Get(h Handle) (*T, bool) {
	s := p.lookup(h)
	if s == nil {
		return nil, false
	}
	return &s.val, true
}

// Alive reports whether h still refers to a live entity.
func (p *Pool[T]) Alive(h Handle) bool {
	return p.lookup(h) != nil
}

// Len returns the number of live entities.
func (p *Pool[T]) Len() int {
	return p.live
}

// Each visits live entities in insertion order until fn returns false.
// Entities added during the walk are not visited; entities removed during
// the walk are skipped. Nested walks are allowed.
func (p *Pool[T]) Each(fn func(h Handle, v *T) bool) {
	p.depth++
	n := len(p.order)
	for i := 0; i < n; i++ {
		h := p.order[i]
		s := p.lookup(h)
		if s == nil {
			continue
		}
		if !fn(h, &s.val) {
			break
		}
	}
	p.depth--
	if p.depth == 0 && p.dirty {
		p.compact()
	}
}

// Clear removes every entity.
func (p *Pool[T]) Clear() {
	var zero T
	p.free = p.free[:0]
	for i := len(p.slots) - 1; i >= 0; i-- {
		s := p.slots[i]
		s.val = zero
		s.alive = false
		p.free = append(p.free, uint32(i))
	}
	p.order = p.order[:0]
	p.live = 0
	p.dirty = false
}

func (p *Pool[T]) lookup(h Handle) *slot[T] {
	if int(h.index) >= len(p.slots) {
		return nil
	}
	s := p.slots[h.index]
	if !s.alive || s.gen != h.gen {
		return nil
	}
	return s
}

func (p *Pool[T]) compact() {
	kept := p.order[:0]
	for _, h := range p.order {
		if p.lookup(h) != nil {
			kept = append(kept, h)
		}
	}
	p.order = kept
	p.dirty = false
}
