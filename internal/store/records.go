package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/rcliao/yijing/internal/kv"
	"github.com/rcliao/yijing/internal/model"
)

// Stamped is satisfied by pointers to record types that embed model.Meta
// and know how to validate their own shape.
type Stamped[T any] interface {
	*T
	Stamp(id int64, at time.Time)
	Header() model.Meta
	Validate() error
}

// RecordStore is an append/list/remove/clear list of records serialized as
// one JSON array under a single namespace key. Every call re-reads the key;
// concurrent writers on the same key race and the last write wins.
type RecordStore[T any, P Stamped[T]] struct {
	kv     kv.Store
	ns     string
	now    func() time.Time
	logger *zap.Logger
}

// NewRecordStore creates a record store for namespace ns.
func NewRecordStore[T any, P Stamped[T]](kvs kv.Store, ns string, opts Options) *RecordStore[T, P] {
	opts = opts.withDefaults()
	return &RecordStore[T, P]{
		kv:     kvs,
		ns:     ns,
		now:    opts.Now,
		logger: opts.Logger.With(zap.String("ns", ns)),
	}
}

// Namespace returns the key the store persists under.
func (s *RecordStore[T, P]) Namespace() string { return s.ns }

// List returns every record, newest first.
func (s *RecordStore[T, P]) List(ctx context.Context) ([]T, error) {
	records, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(records, func(i, j int) bool {
		a, b := P(&records[i]).Header(), P(&records[j]).Header()
		if !a.Timestamp.Equal(b.Timestamp) {
			return a.Timestamp.After(b.Timestamp)
		}
		return a.ID > b.ID
	})
	return records, nil
}

// Get returns the record with the given id.
func (s *RecordStore[T, P]) Get(ctx context.Context, id int64) (T, bool, error) {
	var zero T
	records, err := s.load(ctx)
	if err != nil {
		return zero, false, err
	}
	for i := range records {
		if P(&records[i]).Header().ID == id {
			return records[i], true, nil
		}
	}
	return zero, false, nil
}

// Append stamps rec with an id and timestamp taken from one clock read,
// prepends it and rewrites the namespace. The id is the Unix millisecond of
// the timestamp, bumped past the largest stored id when they collide.
func (s *RecordStore[T, P]) Append(ctx context.Context, rec T) (T, error) {
	p := P(&rec)
	if err := p.Validate(); err != nil {
		return rec, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}

	records, err := s.load(ctx)
	if err != nil {
		return rec, err
	}

	now := s.now().UTC().Truncate(time.Millisecond)
	id := int64(ulid.Timestamp(now))
	for i := range records {
		if existing := P(&records[i]).Header().ID; existing >= id {
			id = existing + 1
		}
	}
	p.Stamp(id, now)

	records = append([]T{rec}, records...)
	if err := s.save(ctx, records); err != nil {
		return rec, err
	}
	s.logger.Debug("record appended", zap.Int64("id", id), zap.Int("count", len(records)))
	return rec, nil
}

// Remove deletes the record with the given id. A missing id is a no-op.
func (s *RecordStore[T, P]) Remove(ctx context.Context, id int64) error {
	records, err := s.load(ctx)
	if err != nil {
		return err
	}
	kept := records[:0]
	for i := range records {
		if P(&records[i]).Header().ID != id {
			kept = append(kept, records[i])
		}
	}
	return s.save(ctx, kept)
}

// Clear writes an empty list regardless of prior contents.
func (s *RecordStore[T, P]) Clear(ctx context.Context) error {
	return s.save(ctx, []T{})
}

func (s *RecordStore[T, P]) load(ctx context.Context) ([]T, error) {
	raw, ok, err := s.kv.Get(ctx, s.ns)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.ns, err)
	}
	if !ok {
		return []T{}, nil
	}
	var records []T
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		s.logger.Warn("discarding unparseable records", zap.Error(err))
		return []T{}, nil
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

func (s *RecordStore[T, P]) save(ctx context.Context, records []T) error {
	b, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode %s: %w", s.ns, err)
	}
	if err := s.kv.Set(ctx, s.ns, string(b)); err != nil {
		return fmt.Errorf("write %s: %w", s.ns, err)
	}
	return nil
}
