package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/rcliao/yijing/internal/kv"
)

// DefaultSearchHistoryLimit caps the remembered queries.
const DefaultSearchHistoryLimit = 10

// SearchHistory remembers recent search queries, most recent first.
type SearchHistory struct {
	kv     kv.Store
	limit  int
	logger *zap.Logger
}

// NewSearchHistory creates the search-history store.
func NewSearchHistory(kvs kv.Store, opts Options) *SearchHistory {
	opts = opts.withDefaults()
	return &SearchHistory{
		kv:     kvs,
		limit:  DefaultSearchHistoryLimit,
		logger: opts.Logger.With(zap.String("ns", SearchHistoryNS)),
	}
}

// List returns the remembered queries, most recent first.
func (h *SearchHistory) List(ctx context.Context) ([]string, error) {
	raw, ok, err := h.kv.Get(ctx, SearchHistoryNS)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", SearchHistoryNS, err)
	}
	if !ok {
		return []string{}, nil
	}
	var queries []string
	if err := json.Unmarshal([]byte(raw), &queries); err != nil {
		h.logger.Warn("discarding unparseable search history", zap.Error(err))
		return []string{}, nil
	}
	if queries == nil {
		queries = []string{}
	}
	return queries, nil
}

// Record moves query to the front of the history, dropping the oldest
// entries beyond the limit. Blank queries are ignored.
func (h *SearchHistory) Record(ctx context.Context, query string) ([]string, error) {
	queries, err := h.List(ctx)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(query) == "" {
		return queries, nil
	}

	next := []string{query}
	for _, q := range queries {
		if q != query {
			next = append(next, q)
		}
	}
	if len(next) > h.limit {
		next = next[:h.limit]
	}

	b, err := json.Marshal(next)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", SearchHistoryNS, err)
	}
	if err := h.kv.Set(ctx, SearchHistoryNS, string(b)); err != nil {
		return nil, fmt.Errorf("write %s: %w", SearchHistoryNS, err)
	}
	return next, nil
}

// Clear forgets every remembered query.
func (h *SearchHistory) Clear(ctx context.Context) error {
	if err := h.kv.Delete(ctx, SearchHistoryNS); err != nil {
		return fmt.Errorf("clear %s: %w", SearchHistoryNS, err)
	}
	return nil
}
