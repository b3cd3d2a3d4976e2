package engine

// Arena is an unordered entity collection with O(1) swap-remove
// Physical order carries no meaning; iterate backward when removing during a pass
type Arena[T any] struct {
	items []T
	limit int
}

// NewArena creates an arena; limit <= 0 means unbounded
func NewArena[T any](capacity, limit int) Arena[T] {
	return Arena[T]{
		items: make([]T, 0, capacity),
		limit: limit,
	}
}

// Add appends v, reporting false when the arena is at its limit
func (a *Arena[T]) Add(v T) bool {
	if a.limit > 0 && len(a.items) >= a.limit {
		return false
	}
	a.items = append(a.items, v)
	return true
}

// Len returns the number of live entries
func (a *Arena[T]) Len() int {
	return len(a.items)
}

// At returns a pointer valid until the next Add or SwapRemove
func (a *Arena[T]) At(i int) *T {
	return &a.items[i]
}

// SwapRemove moves the last entry into slot i and shrinks the arena
func (a *Arena[T]) SwapRemove(i int) {
	last := len(a.items) - 1
	if i != last {
		a.items[i] = a.items[last]
	}
	var zero T
	a.items[last] = zero
	a.items = a.items[:last]
}

// RemoveIf removes every entry for which pred returns true, returning the count removed
// pred may mutate the entry it is given
func (a *Arena[T]) RemoveIf(pred func(*T) bool) int {
	removed := 0
	for i := len(a.items) - 1; i >= 0; i-- {
		if pred(&a.items[i]) {
			a.SwapRemove(i)
			removed++
		}
	}
	return removed
}

// Items exposes the backing slice for read-only passes (rendering)
func (a *Arena[T]) Items() []T {
	return a.items
}

// Clear drops all entries and keeps capacity
func (a *Arena[T]) Clear() {
	clear(a.items)
	a.items = a.items[:0]
}
