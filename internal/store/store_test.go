package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/rcliao/yijing/internal/kv"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 3, 14, 9, 26, 53, 589_000_000, time.UTC)}
}

func newTestStores(t *testing.T, clock *fakeClock) (*Stores, *kv.Memory) {
	t.Helper()
	mem := kv.NewMemory()
	s := Open(mem, Options{Now: clock.Now})
	t.Cleanup(func() { s.Close() })
	return s, mem
}

func newSQLiteStores(t *testing.T, clock *fakeClock) *Stores {
	t.Helper()
	db, err := kv.NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	s := Open(db, Options{Now: clock.Now})
	t.Cleanup(func() { s.Close() })
	return s
}
