package store

import (
	"context"
	"fmt"
	"testing"
)

func TestSearchHistoryCapacity(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStores(t, newClock())

	for i := 1; i <= 11; i++ {
		if _, err := s.Searches.Record(ctx, fmt.Sprintf("q%d", i)); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	got, _ := s.Searches.List(ctx)
	if len(got) != 10 {
		t.Fatalf("expected 10, got %d", len(got))
	}
	if got[0] != "q11" || got[9] != "q2" {
		t.Errorf("expected q11..q2, got %v", got)
	}
}

func TestSearchHistoryDedupAndBlank(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStores(t, newClock())

	s.Searches.Record(ctx, "乾")
	s.Searches.Record(ctx, "坤")
	s.Searches.Record(ctx, "   ")
	got, _ := s.Searches.Record(ctx, "乾")

	if len(got) != 2 || got[0] != "乾" || got[1] != "坤" {
		t.Errorf("expected [乾 坤], got %v", got)
	}
}

func TestSearchHistoryClearAndCorrupt(t *testing.T) {
	ctx := context.Background()
	s, mem := newTestStores(t, newClock())

	s.Searches.Record(ctx, "泰")
	if err := s.Searches.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, ok, _ := mem.Get(ctx, SearchHistoryNS); ok {
		t.Error("expected key removed after clear")
	}

	mem.Set(ctx, SearchHistoryNS, "[1,2")
	got, err := s.Searches.List(ctx)
	if err != nil || len(got) != 0 {
		t.Errorf("expected empty list and no error, got %v %v", got, err)
	}
}
