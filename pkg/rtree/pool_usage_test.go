package rtree

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/mnohosten/bptrees/pkg/workpool/workpoolmock"
)

// TestIntersectParallelUsesSuppliedPool asserts the wiring contract
// against a mock rather than a real pool: Wait is called exactly once,
// and the mock runs inline any task handed to Go. With order 4 no child
// node reaches parallelFanout slots, so no task is handed to Go here; the
// test checks that the traversal still emits intersecting values.
func TestIntersectParallelUsesSuppliedPool(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tr, _ := New[int, record](4, toKey, toBox)
	for i := 0; i < 2000; i++ {
		tr.Add(newRecord(i, i, i+1))
	}

	mock := workpoolmock.NewMockPool(ctrl)
	mock.EXPECT().Go(gomock.Any()).Do(func(task func()) { task() }).AnyTimes()
	mock.EXPECT().Wait().Times(1)

	var got []int
	err := tr.IntersectParallel(context.Background(), interval(100, 200), func(r record) {
		got = append(got, r.id)
	}, mock)
	if err != nil {
		t.Fatalf("IntersectParallel: %v", err)
	}
	if len(got) == 0 {
		t.Fatal("expected at least one intersecting value")
	}
}
