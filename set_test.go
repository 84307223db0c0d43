package ordered

import (
	"testing"

	"github.com/npillmayer/ordered/btree"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func intcmp(a, b int) int { return a - b }

func TestSetAddOrdersKeys(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	s := NewSet[int](intcmp)
	for _, k := range []int{5, 1, 9, 3} {
		if !s.Add(k) {
			t.Errorf("add(%d) reported key as already present", k)
		}
	}
	want := []int{1, 3, 5, 9}
	got := s.Values()
	if len(got) != len(want) {
		t.Fatalf("values = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("values = %v, want %v", got, want)
		}
	}
	if s.Add(5) {
		t.Error("re-adding 5 must not report a new key")
	}
	if s.Len() != 4 {
		t.Errorf("len = %d, want 4", s.Len())
	}
}

func TestSetMembershipAndRank(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	s := NewSet[int](intcmp)
	for _, k := range []int{1, 2, 3, 5, 6} {
		s.Add(k)
	}
	if enc := s.IndexOf(4); enc != -4 {
		t.Errorf("indexOf(4) = %d, want -4", enc)
	}
	if ins := btree.NotFound(s.IndexOf(4)); ins != 3 {
		t.Errorf("decoded insertion point = %d, want 3", ins)
	}
	if rank := s.IndexOf(5); rank != 3 {
		t.Errorf("indexOf(5) = %d, want 3", rank)
	}
	if !s.Has(2) || s.Has(4) {
		t.Error("membership reports wrong answers")
	}
	if k, ok := s.At(-1); !ok || k != 6 {
		t.Errorf("at(-1) = %d, want 6", k)
	}
	if !s.Delete(2) || s.Has(2) {
		t.Error("delete(2) did not remove the key")
	}
	if s.Delete(2) {
		t.Error("delete of an absent key must report false")
	}
}

func TestSetThousandDeleteEvens(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	s := NewSet[int](intcmp)
	for k := 0; k < 1000; k++ {
		s.Add(k)
	}
	for k := 0; k < 1000; k += 2 {
		if !s.Delete(k) {
			t.Fatalf("delete(%d) failed", k)
		}
	}
	if s.Len() != 500 {
		t.Fatalf("len = %d, want 500", s.Len())
	}
	wantNext := 1
	s.Each(func(k int) bool {
		if k != wantNext {
			t.Fatalf("iteration yields %d, want %d", k, wantNext)
		}
		wantNext += 2
		return true
	})
}

func TestSetAssign(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	s := NewSet[int](intcmp)
	s.Assign([]int{10, 20, 30, 40}, true)
	if s.Len() != 4 || !s.Has(30) {
		t.Fatal("normalized assign did not load the batch")
	}
	s.Assign([]int{4, 2, 4, 1, 2}, false)
	want := []int{1, 2, 4}
	got := s.Values()
	if len(got) != len(want) {
		t.Fatalf("values after un-normalized assign = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("values after un-normalized assign = %v, want %v", got, want)
		}
	}
}
