package store

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/rcliao/yijing/internal/model"
)

// Snapshot is the export document: the raw value of every present namespace.
type Snapshot struct {
	ID         string                     `json:"id"`
	ExportedAt time.Time                  `json:"exported_at"`
	Namespaces map[string]json.RawMessage `json:"namespaces"`
}

// Export returns a snapshot of every present namespace.
func (s *Stores) Export(ctx context.Context) (*Snapshot, error) {
	now := s.opts.Now().UTC()
	entropy := rand.New(rand.NewSource(now.UnixNano()))
	snap := &Snapshot{
		ID:         ulid.MustNew(ulid.Timestamp(now), entropy).String(),
		ExportedAt: now,
		Namespaces: map[string]json.RawMessage{},
	}
	for _, ns := range Namespaces {
		raw, ok, err := s.KV.Get(ctx, ns)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", ns, err)
		}
		if !ok {
			continue
		}
		if !json.Valid([]byte(raw)) {
			s.opts.Logger.Warn("skipping unparseable namespace in export", zap.String("ns", ns))
			continue
		}
		snap.Namespaces[ns] = json.RawMessage(raw)
	}
	return snap, nil
}

// Import validates each namespace of snap against its schema and writes it.
// Nothing is written unless every namespace validates. Unknown namespaces are
// skipped. Returns the number of namespaces written.
func (s *Stores) Import(ctx context.Context, snap *Snapshot) (int, error) {
	known := map[string]bool{}
	for _, ns := range Namespaces {
		known[ns] = true
	}

	pending := map[string]string{}
	for ns, raw := range snap.Namespaces {
		if !known[ns] {
			s.opts.Logger.Warn("skipping unknown namespace in import", zap.String("ns", ns))
			continue
		}
		if err := validateNamespace(ns, raw); err != nil {
			return 0, fmt.Errorf("import %s: %w", ns, err)
		}
		pending[ns] = string(raw)
	}

	imported := 0
	for _, ns := range Namespaces {
		raw, ok := pending[ns]
		if !ok {
			continue
		}
		if err := s.KV.Set(ctx, ns, raw); err != nil {
			return imported, fmt.Errorf("write %s: %w", ns, err)
		}
		imported++
	}
	return imported, nil
}

func validateNamespace(ns string, raw json.RawMessage) error {
	switch ns {
	case HistoryNS:
		var records []model.DivinationRecord
		if err := json.Unmarshal(raw, &records); err != nil {
			return err
		}
		seen := map[int64]bool{}
		for _, r := range records {
			if err := r.Validate(); err != nil {
				return fmt.Errorf("record %d: %w", r.ID, err)
			}
			if seen[r.ID] {
				return fmt.Errorf("duplicate record id %d", r.ID)
			}
			seen[r.ID] = true
		}
	case SearchHistoryNS:
		var queries []string
		if err := json.Unmarshal(raw, &queries); err != nil {
			return err
		}
		if len(queries) > DefaultSearchHistoryLimit {
			return fmt.Errorf("search history holds %d entries, limit is %d", len(queries), DefaultSearchHistoryLimit)
		}
	case ProgressNS:
		p := model.NewProgress()
		return json.Unmarshal(raw, &p)
	case SettingsNS:
		st := model.DefaultSettings()
		if err := json.Unmarshal(raw, &st); err != nil {
			return err
		}
		return st.Validate()
	}
	return nil
}
