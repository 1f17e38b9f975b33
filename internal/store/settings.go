package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/rcliao/yijing/internal/kv"
	"github.com/rcliao/yijing/internal/model"
)

// SettingsStore persists the user preferences object.
type SettingsStore struct {
	kv     kv.Store
	logger *zap.Logger
}

// NewSettingsStore creates the settings store.
func NewSettingsStore(kvs kv.Store, opts Options) *SettingsStore {
	opts = opts.withDefaults()
	return &SettingsStore{kv: kvs, logger: opts.Logger.With(zap.String("ns", SettingsNS))}
}

// Load returns the stored settings shallow-merged over the defaults: keys
// missing from the stored object keep their default value, and so does a
// key whose stored value has the wrong type. Only an unparseable blob
// falls back to the defaults as a whole.
func (s *SettingsStore) Load(ctx context.Context) (model.Settings, error) {
	raw, ok, err := s.kv.Get(ctx, SettingsNS)
	if err != nil {
		return model.Settings{}, fmt.Errorf("read %s: %w", SettingsNS, err)
	}
	merged := model.DefaultSettings()
	if !ok {
		return merged, nil
	}
	if !mergeObject(raw, &merged, s.logger) {
		s.logger.Warn("discarding unparseable settings")
		return model.DefaultSettings(), nil
	}
	return merged, nil
}

// Save validates and overwrites the stored settings. Stored keys outside
// the settings schema are carried over.
func (s *SettingsStore) Save(ctx context.Context, st model.Settings) error {
	return s.write(ctx, st, true)
}

// Reset writes the defaults, dropping any keys outside the schema.
func (s *SettingsStore) Reset(ctx context.Context) (model.Settings, error) {
	def := model.DefaultSettings()
	return def, s.write(ctx, def, false)
}

func (s *SettingsStore) write(ctx context.Context, st model.Settings, keepExtra bool) error {
	if err := st.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	fields, err := settingsFields(st)
	if err != nil {
		return err
	}
	if keepExtra {
		if err := s.carryExtra(ctx, fields); err != nil {
			return err
		}
	}
	b, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("encode %s: %w", SettingsNS, err)
	}
	if err := s.kv.Set(ctx, SettingsNS, string(b)); err != nil {
		return fmt.Errorf("write %s: %w", SettingsNS, err)
	}
	return nil
}

// carryExtra copies stored keys the schema does not know into fields.
func (s *SettingsStore) carryExtra(ctx context.Context, fields map[string]json.RawMessage) error {
	raw, ok, err := s.kv.Get(ctx, SettingsNS)
	if err != nil {
		return fmt.Errorf("read %s: %w", SettingsNS, err)
	}
	if !ok {
		return nil
	}
	var stored map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		return nil
	}
	for k, v := range stored {
		if _, known := fields[k]; !known {
			fields[k] = v
		}
	}
	return nil
}

func settingsFields(st model.Settings) (map[string]json.RawMessage, error) {
	b, err := json.Marshal(st)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", SettingsNS, err)
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil {
		return nil, fmt.Errorf("encode %s: %w", SettingsNS, err)
	}
	return fields, nil
}

// Set updates one preference by its JSON name. raw is converted to the
// field's type.
func (s *SettingsStore) Set(ctx context.Context, key, raw string) (model.Settings, error) {
	cur, err := s.Load(ctx)
	if err != nil {
		return cur, err
	}

	b, err := json.Marshal(cur)
	if err != nil {
		return cur, fmt.Errorf("encode %s: %w", SettingsNS, err)
	}
	var fields map[string]any
	if err := json.Unmarshal(b, &fields); err != nil {
		return cur, fmt.Errorf("encode %s: %w", SettingsNS, err)
	}

	old, ok := fields[key]
	if !ok {
		return cur, fmt.Errorf("%w: %s", ErrUnknownSetting, key)
	}

	switch old.(type) {
	case bool:
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return cur, fmt.Errorf("%s expects true or false: %w", key, err)
		}
		fields[key] = v
	case float64:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return cur, fmt.Errorf("%s expects a number: %w", key, err)
		}
		fields[key] = v
	default:
		fields[key] = raw
	}

	b, err = json.Marshal(fields)
	if err != nil {
		return cur, fmt.Errorf("encode %s: %w", SettingsNS, err)
	}
	var next model.Settings
	if err := json.Unmarshal(b, &next); err != nil {
		return cur, fmt.Errorf("%s: %w", key, err)
	}
	if err := s.Save(ctx, next); err != nil {
		return cur, err
	}
	return next, nil
}
