package bptree

import "testing"

func ptr[T any](v T) *T { return &v }

func TestNewRejectsSmallOrder(t *testing.T) {
	if _, err := New[string, int](2); err != ErrInvalidOrder {
		t.Fatalf("expected ErrInvalidOrder, got %v", err)
	}
}

func TestPutGetRoundTrip(t *testing.T) {
	tr, _ := New[string, string](4)

	if _, existed := tr.Put("k10", "value10"); existed {
		t.Fatal("expected fresh key to report existed=false")
	}

	v, found := tr.Get("k10")
	if !found || v != "value10" {
		t.Fatalf("Get(k10) = %q, %v; want value10, true", v, found)
	}

	if _, found := tr.Get("k99"); found {
		t.Fatal("expected key k99 to be absent")
	}
}

func TestPutOverwriteReturnsDisplaced(t *testing.T) {
	tr, _ := New[int, string](3)

	tr.Put(1, "a")
	old, existed := tr.Put(1, "b")
	if !existed || old != "a" {
		t.Fatalf("Put overwrite = %q, %v; want a, true", old, existed)
	}

	v, _ := tr.Get(1)
	if v != "b" {
		t.Fatalf("Get(1) = %q; want b", v)
	}
}

func TestComputeIfAbsent(t *testing.T) {
	tr, _ := New[int, int](3)
	calls := 0
	supply := func() (int, bool) {
		calls++
		return 42, true
	}

	v, err := tr.ComputeIfAbsent(1, supply)
	if err != nil || v != 42 {
		t.Fatalf("ComputeIfAbsent = %d, %v; want 42, nil", v, err)
	}

	v, err = tr.ComputeIfAbsent(1, supply)
	if err != nil || v != 42 || calls != 1 {
		t.Fatalf("second ComputeIfAbsent should not call supplier; calls=%d", calls)
	}

	if _, err := tr.ComputeIfAbsent(2, nil); err != ErrNilSupplier {
		t.Fatalf("expected ErrNilSupplier, got %v", err)
	}

	declined := func() (int, bool) { return 0, false }
	if _, err := tr.ComputeIfAbsent(3, declined); err != ErrSupplierDeclined {
		t.Fatalf("expected ErrSupplierDeclined, got %v", err)
	}
	if _, found := tr.Get(3); found {
		t.Fatal("declined supplier must not store an entry")
	}
}

func TestRemoveRoundTrip(t *testing.T) {
	tr, _ := New[int, string](3)
	tr.Put(1, "a")
	tr.Put(2, "b")
	tr.Put(3, "c")

	v, removed := tr.Remove(2)
	if !removed || v != "b" {
		t.Fatalf("Remove(2) = %q, %v; want b, true", v, removed)
	}
	if _, found := tr.Get(2); found {
		t.Fatal("key 2 should be gone")
	}
	if tr.Size() != 2 {
		t.Fatalf("Size() = %d; want 2", tr.Size())
	}

	if _, removed := tr.Remove(2); removed {
		t.Fatal("removing an absent key must be a no-op")
	}
}

func TestRangeExclusiveUpperEnd(t *testing.T) {
	tr, _ := New[int, int](3)
	for i := 0; i < 20; i++ {
		tr.Put(i, i*10)
	}

	it, err := tr.Range(ptr(4), ptr(12))
	if err != nil {
		t.Fatalf("Range: %v", err)
	}
	var got []int
	for it.HasNext() {
		k, _ := it.Next()
		got = append(got, k)
	}
	if len(got) != 8 {
		t.Fatalf("got %d keys, want 8 (exclusive upper end): %v", len(got), got)
	}
	for i, k := range got {
		if k != 4+i {
			t.Fatalf("got[%d] = %d; want %d", i, k, 4+i)
		}
	}
}

func TestRangeNilBoundsAreUnbounded(t *testing.T) {
	tr, _ := New[int, int](3)
	for i := 0; i < 10; i++ {
		tr.Put(i, i)
	}

	it, err := tr.Range(nil, ptr(3))
	if err != nil {
		t.Fatalf("Range: %v", err)
	}
	var got []int
	for it.HasNext() {
		k, _ := it.Next()
		got = append(got, k)
	}
	if len(got) != 3 {
		t.Fatalf("Range(nil, 3) got %d keys; want 3: %v", len(got), got)
	}

	it, err = tr.Range(ptr(7), nil)
	if err != nil {
		t.Fatalf("Range: %v", err)
	}
	got = nil
	for it.HasNext() {
		k, _ := it.Next()
		got = append(got, k)
	}
	if len(got) != 3 {
		t.Fatalf("Range(7, nil) got %d keys; want 3: %v", len(got), got)
	}
}

func TestRangeRejectsInvertedBounds(t *testing.T) {
	tr, _ := New[int, int](3)
	if _, err := tr.Range(ptr(5), ptr(3)); err != ErrInvalidRange {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
}

func TestGetAllOrder(t *testing.T) {
	tr, _ := New[int, int](4)
	keys := []int{50, 30, 70, 20, 40, 60, 80, 10, 90}
	for _, k := range keys {
		tr.Put(k, k*10)
	}

	values := tr.GetAll()
	if len(values) != len(keys) {
		t.Fatalf("GetAll len = %d; want %d", len(values), len(keys))
	}
	for i := 1; i < len(values); i++ {
		if values[i-1] >= values[i] {
			t.Fatalf("GetAll not sorted at %d: %v", i, values)
		}
	}
}

// TestOrder8RangeScenario exercises §8 scenario 2: order 8, insert 64 keys
// 0..63, Range(nil, 16) yields the 16 values for keys 0..15 (exclusive
// upper end).
func TestOrder8RangeScenario(t *testing.T) {
	tr, _ := New[int, int](8)
	for i := 0; i < 64; i++ {
		tr.Put(i, i)
	}
	if tr.Size() != 64 {
		t.Fatalf("Size() = %d; want 64", tr.Size())
	}

	it, err := tr.Range(nil, ptr(16))
	if err != nil {
		t.Fatalf("Range: %v", err)
	}
	var got []int
	for it.HasNext() {
		_, v := it.Next()
		got = append(got, v)
	}
	if len(got) != 16 {
		t.Fatalf("Range(nil, 16) got %d values; want 16: %v", len(got), got)
	}
	for i, v := range got {
		if v != i {
			t.Fatalf("got[%d] = %d; want %d", i, v, i)
		}
	}
}

func TestClear(t *testing.T) {
	tr, _ := New[int, int](3)
	tr.Put(1, 1)
	tr.Put(2, 2)
	tr.Clear()
	if tr.Size() != 0 || !tr.IsEmpty() || tr.Height() != 0 {
		t.Fatalf("Clear did not reset tree: size=%d height=%d", tr.Size(), tr.Height())
	}
	if _, found := tr.Get(1); found {
		t.Fatal("cleared tree should not contain old keys")
	}
}

func TestMultiLevelSplitsAndCollapses(t *testing.T) {
	for _, order := range []int{3, 4, 8, 64} {
		tr, _ := New[int, int](order)
		const n = 2000
		for i := 0; i < n; i++ {
			tr.Put(i, i)
		}
		if tr.Size() != n {
			t.Fatalf("order %d: Size() = %d; want %d", order, tr.Size(), n)
		}
		for i := n - 1; i >= 0; i-- {
			if _, removed := tr.Remove(i); !removed {
				t.Fatalf("order %d: Remove(%d) failed", order, i)
			}
		}
		if tr.Size() != 0 || tr.Height() != 0 {
			t.Fatalf("order %d: after draining, size=%d height=%d", order, tr.Size(), tr.Height())
		}
	}
}
