package progress

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/rcliao/yijing/internal/model"
	"github.com/rcliao/yijing/internal/store"
)

// Tracker applies progress updates to the persisted progress state.
type Tracker struct {
	store  *store.ProgressStore
	now    func() time.Time
	logger *zap.Logger
}

// NewTracker creates a tracker. A nil now uses the wall clock; a nil logger
// discards output.
func NewTracker(ps *store.ProgressStore, now func() time.Time, logger *zap.Logger) *Tracker {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Tracker{store: ps, now: now, logger: logger}
}

// Complete marks a lesson complete and returns the resulting state along
// with the achievements this call unlocked.
func (t *Tracker) Complete(ctx context.Context, lessonID int) (model.Progress, []Achievement, error) {
	cur, err := t.store.Load(ctx)
	if err != nil {
		return cur, nil, err
	}
	next := CompleteLesson(cur, lessonID, t.now())
	if len(next.CompletedLessons) == len(cur.CompletedLessons) {
		return cur, nil, nil
	}
	if err := t.store.Save(ctx, next); err != nil {
		return cur, nil, err
	}

	var unlocked []Achievement
	for _, id := range next.Achievements[len(cur.Achievements):] {
		unlocked = append(unlocked, Lookup(id))
	}
	t.logger.Info("lesson completed",
		zap.Int("lesson", lessonID),
		zap.Int("streak", next.Streak),
		zap.Int("unlocked", len(unlocked)))
	return next, unlocked, nil
}

// Learn records a hexagram as studied.
func (t *Tracker) Learn(ctx context.Context, hexagramID int) (model.Progress, error) {
	cur, err := t.store.Load(ctx)
	if err != nil {
		return cur, err
	}
	next := LearnHexagram(cur, hexagramID)
	if len(next.HexagramsLearned) == len(cur.HexagramsLearned) {
		return cur, nil
	}
	return next, t.store.Save(ctx, next)
}

// Load returns the persisted state.
func (t *Tracker) Load(ctx context.Context) (model.Progress, error) {
	return t.store.Load(ctx)
}

// Reset clears all progress.
func (t *Tracker) Reset(ctx context.Context) error {
	return t.store.Reset(ctx)
}
