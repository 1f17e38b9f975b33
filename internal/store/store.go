// Package store provides the namespaced stores persisted on a kv.Store.
package store

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/rcliao/yijing/internal/kv"
	"github.com/rcliao/yijing/internal/model"
)

// Namespace keys. Each names one logical collection in the kv medium.
const (
	HistoryNS       = "divination_history"
	SearchHistoryNS = "search_history"
	ProgressNS      = "learning_progress"
	SettingsNS      = "user_settings"
)

// Namespaces lists every namespace this package owns.
var Namespaces = []string{HistoryNS, SearchHistoryNS, ProgressNS, SettingsNS}

var (
	// ErrInvalidRecord is returned when a record does not match its type's shape.
	ErrInvalidRecord = errors.New("invalid record")

	// ErrUnknownSetting is returned when setting a key the settings schema lacks.
	ErrUnknownSetting = errors.New("unknown setting")
)

// Options configures the stores. Zero values select the real clock and a no-op logger.
type Options struct {
	Now    func() time.Time
	Logger *zap.Logger
}

func (o Options) withDefaults() Options {
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}

// History is the divination history store.
type History = RecordStore[model.DivinationRecord, *model.DivinationRecord]

// Stores bundles every namespace store over one kv medium.
type Stores struct {
	KV       kv.Store
	History  *History
	Searches *SearchHistory
	Progress *ProgressStore
	Settings *SettingsStore

	opts Options
}

// Open wires every namespace store to kvs.
func Open(kvs kv.Store, opts Options) *Stores {
	opts = opts.withDefaults()
	return &Stores{
		KV:       kvs,
		History:  NewRecordStore[model.DivinationRecord](kvs, HistoryNS, opts),
		Searches: NewSearchHistory(kvs, opts),
		Progress: NewProgressStore(kvs, opts),
		Settings: NewSettingsStore(kvs, opts),
		opts:     opts,
	}
}

// Close closes the underlying medium.
func (s *Stores) Close() error {
	return s.KV.Close()
}
