package engine

import (
	"slices"
	"testing"
)

func TestArenaSwapRemove(t *testing.T) {
	a := NewArena[int](4, 0)
	for i := 1; i <= 4; i++ {
		a.Add(i)
	}

	a.SwapRemove(0)
	if a.Len() != 3 {
		t.Fatalf("Len = %d, want 3", a.Len())
	}
	if *a.At(0) != 4 {
		t.Errorf("slot 0 = %d, want last element 4", *a.At(0))
	}

	a.SwapRemove(a.Len() - 1)
	got := slices.Sorted(slices.Values(a.Items()))
	if !slices.Equal(got, []int{2, 4}) {
		t.Errorf("items = %v, want [2 4]", got)
	}
}

func TestArenaRemoveIfVisitsEachOnce(t *testing.T) {
	a := NewArena[int](8, 0)
	for i := 0; i < 8; i++ {
		a.Add(i)
	}

	visits := make(map[int]int)
	removed := a.RemoveIf(func(v *int) bool {
		visits[*v]++
		return *v%2 == 0
	})

	if removed != 4 || a.Len() != 4 {
		t.Fatalf("removed %d, left %d; want 4, 4", removed, a.Len())
	}
	for v, n := range visits {
		if n != 1 {
			t.Errorf("value %d visited %d times", v, n)
		}
	}
	for _, v := range a.Items() {
		if v%2 == 0 {
			t.Errorf("even value %d survived", v)
		}
	}
}

func TestArenaLimit(t *testing.T) {
	a := NewArena[int](0, 2)
	if !a.Add(1) || !a.Add(2) {
		t.Fatal("adds under limit refused")
	}
	if a.Add(3) {
		t.Error("add over limit accepted")
	}
	a.Clear()
	if a.Len() != 0 || !a.Add(3) {
		t.Error("Clear did not free capacity")
	}
}
