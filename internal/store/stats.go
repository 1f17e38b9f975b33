package store

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
)

// Stats holds storage statistics.
type Stats struct {
	DBPath      string           `json:"db_path,omitempty"`
	DBSizeBytes int64            `json:"db_size_bytes,omitempty"`
	Namespaces  []NamespaceStats `json:"namespaces"`
	// Foreign lists keys in the medium that no namespace owns.
	Foreign []string `json:"foreign_keys,omitempty"`
}

// NamespaceStats holds per-namespace counts.
type NamespaceStats struct {
	NS      string `json:"ns"`
	Present bool   `json:"present"`
	Entries int    `json:"entries"`
	Bytes   int    `json:"bytes"`
	Corrupt bool   `json:"corrupt,omitempty"`
}

type sizedStore interface {
	Path() string
	Size() int64
}

// Stats reports presence, entry count and size of every namespace. Lists
// count their elements, objects count their keys.
func (s *Stores) Stats(ctx context.Context) (*Stats, error) {
	st := &Stats{}
	if sized, ok := s.KV.(sizedStore); ok {
		st.DBPath = sized.Path()
		st.DBSizeBytes = sized.Size()
	}

	for _, ns := range Namespaces {
		raw, ok, err := s.KV.Get(ctx, ns)
		if err != nil {
			return st, err
		}
		nst := NamespaceStats{NS: ns, Present: ok, Bytes: len(raw)}
		if ok {
			var v any
			if err := json.Unmarshal([]byte(raw), &v); err != nil {
				nst.Corrupt = true
			} else {
				switch x := v.(type) {
				case []any:
					nst.Entries = len(x)
				case map[string]any:
					nst.Entries = len(x)
				}
			}
		}
		st.Namespaces = append(st.Namespaces, nst)
	}

	keys, err := s.KV.Keys(ctx)
	if err != nil {
		return st, fmt.Errorf("list keys: %w", err)
	}
	for _, k := range keys {
		if !slices.Contains(Namespaces, k) {
			st.Foreign = append(st.Foreign, k)
		}
	}
	return st, nil
}
