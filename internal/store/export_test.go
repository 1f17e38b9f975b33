package store

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/rcliao/yijing/internal/model"
)

func TestExportImportRoundTrip(t *testing.T) {
	ctx := context.Background()
	clock := newClock()
	src := newSQLiteStores(t, clock)

	src.History.Append(ctx, model.NewQuickRecord(1))
	src.Searches.Record(ctx, "谦")
	src.Settings.Set(ctx, "theme", "dark")

	snap, err := src.Export(ctx)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if snap.ID == "" {
		t.Error("expected snapshot id")
	}
	if len(snap.Namespaces) != 3 {
		t.Errorf("expected 3 namespaces, got %d", len(snap.Namespaces))
	}

	// Through JSON, as the CLI does.
	b, _ := json.Marshal(snap)
	var decoded Snapshot
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}

	dst := newSQLiteStores(t, clock)
	n, err := dst.Import(ctx, &decoded)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if n != 3 {
		t.Errorf("expected 3 imported, got %d", n)
	}

	hist, _ := dst.History.List(ctx)
	if len(hist) != 1 || hist[0].HexagramID != 1 {
		t.Errorf("history not imported: %+v", hist)
	}
	queries, _ := dst.Searches.List(ctx)
	if len(queries) != 1 || queries[0] != "谦" {
		t.Errorf("search history not imported: %v", queries)
	}
	st, _ := dst.Settings.Load(ctx)
	if st.Theme != "dark" {
		t.Errorf("settings not imported: %+v", st)
	}
}

func TestImportRejectsInvalid(t *testing.T) {
	ctx := context.Background()
	s, mem := newTestStores(t, newClock())

	snap := &Snapshot{Namespaces: map[string]json.RawMessage{
		SearchHistoryNS: json.RawMessage(`["ok"]`),
		HistoryNS:       json.RawMessage(`[{"id":1,"timestamp":"2024-01-01T00:00:00Z","type":"bogus","hexagramId":1}]`),
	}}
	if _, err := s.Import(ctx, snap); err == nil {
		t.Fatal("expected invalid history to fail import")
	}
	if _, ok, _ := mem.Get(ctx, SearchHistoryNS); ok {
		t.Error("nothing should be written when any namespace fails validation")
	}

	snap = &Snapshot{Namespaces: map[string]json.RawMessage{
		SettingsNS: json.RawMessage(`{"theme":"neon"}`),
	}}
	if _, err := s.Import(ctx, snap); err == nil {
		t.Error("expected invalid settings to fail import")
	}

	snap = &Snapshot{Namespaces: map[string]json.RawMessage{
		"someone_else": json.RawMessage(`{}`),
	}}
	n, err := s.Import(ctx, snap)
	if err != nil || n != 0 {
		t.Errorf("expected unknown namespace skipped, got n=%d err=%v", n, err)
	}
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	s := newSQLiteStores(t, newClock())

	s.History.Append(ctx, model.NewQuickRecord(1))
	s.Searches.Record(ctx, "a")
	s.Searches.Record(ctx, "b")
	s.KV.Set(ctx, ProgressNS, "broken")
	s.KV.Set(ctx, "stray", "{}")

	st, err := s.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if st.DBPath == "" {
		t.Errorf("expected db path, got %+v", st)
	}
	byNS := map[string]NamespaceStats{}
	for _, n := range st.Namespaces {
		byNS[n.NS] = n
	}
	if byNS[HistoryNS].Entries != 1 {
		t.Errorf("expected 1 history entry, got %+v", byNS[HistoryNS])
	}
	if byNS[SearchHistoryNS].Entries != 2 {
		t.Errorf("expected 2 queries, got %+v", byNS[SearchHistoryNS])
	}
	if !byNS[ProgressNS].Corrupt {
		t.Errorf("expected corrupt progress, got %+v", byNS[ProgressNS])
	}
	if byNS[SettingsNS].Present {
		t.Errorf("expected settings absent, got %+v", byNS[SettingsNS])
	}
	if len(st.Foreign) != 1 || st.Foreign[0] != "stray" {
		t.Errorf("expected foreign key stray, got %v", st.Foreign)
	}
}
