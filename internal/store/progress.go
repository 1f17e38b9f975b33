package store

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/rcliao/yijing/internal/kv"
	"github.com/rcliao/yijing/internal/model"
)

// ProgressStore persists the single learning-progress object.
type ProgressStore struct {
	kv     kv.Store
	logger *zap.Logger
}

// NewProgressStore creates the progress store.
func NewProgressStore(kvs kv.Store, opts Options) *ProgressStore {
	opts = opts.withDefaults()
	return &ProgressStore{kv: kvs, logger: opts.Logger.With(zap.String("ns", ProgressNS))}
}

// Load returns the stored progress merged over the empty state. An absent or
// unparseable blob yields the empty state; a mistyped field keeps its
// default.
func (s *ProgressStore) Load(ctx context.Context) (model.Progress, error) {
	raw, ok, err := s.kv.Get(ctx, ProgressNS)
	if err != nil {
		return model.Progress{}, fmt.Errorf("read %s: %w", ProgressNS, err)
	}
	if !ok {
		return model.NewProgress(), nil
	}
	p := model.NewProgress()
	if !mergeObject(raw, &p, s.logger) {
		s.logger.Warn("discarding unparseable progress")
		return model.NewProgress(), nil
	}
	return normalizeProgress(p), nil
}

// Save overwrites the stored progress.
func (s *ProgressStore) Save(ctx context.Context, p model.Progress) error {
	b, err := json.Marshal(normalizeProgress(p))
	if err != nil {
		return fmt.Errorf("encode %s: %w", ProgressNS, err)
	}
	if err := s.kv.Set(ctx, ProgressNS, string(b)); err != nil {
		return fmt.Errorf("write %s: %w", ProgressNS, err)
	}
	return nil
}

// Reset writes the empty progress state.
func (s *ProgressStore) Reset(ctx context.Context) error {
	return s.Save(ctx, model.NewProgress())
}

// normalizeProgress turns null lists into empty ones so the blob always
// carries arrays.
func normalizeProgress(p model.Progress) model.Progress {
	if p.CompletedLessons == nil {
		p.CompletedLessons = []int{}
	}
	if p.Achievements == nil {
		p.Achievements = []string{}
	}
	if p.HexagramsLearned == nil {
		p.HexagramsLearned = []int{}
	}
	return p
}
