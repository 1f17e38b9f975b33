package store

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rcliao/yijing/internal/model"
)

func TestSettingsDefaultsAndMerge(t *testing.T) {
	ctx := context.Background()
	s, mem := newTestStores(t, newClock())

	got, err := s.Settings.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != model.DefaultSettings() {
		t.Errorf("expected defaults, got %+v", got)
	}

	// An older blob missing most keys keeps defaults for them.
	mem.Set(ctx, SettingsNS, `{"theme":"dark","fontSize":18}`)
	got, _ = s.Settings.Load(ctx)
	if got.Theme != "dark" || got.FontSize != 18 {
		t.Errorf("stored keys not applied: %+v", got)
	}
	if got.ReminderTime != "20:00" || !got.SaveHistory {
		t.Errorf("missing keys should keep defaults: %+v", got)
	}

	mem.Set(ctx, SettingsNS, "{oops")
	got, err = s.Settings.Load(ctx)
	if err != nil || got != model.DefaultSettings() {
		t.Errorf("expected defaults on corrupt blob, got %+v %v", got, err)
	}
}

func TestSettingsSet(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStores(t, newClock())

	got, err := s.Settings.Set(ctx, "fontSize", "16")
	if err != nil {
		t.Fatalf("set fontSize: %v", err)
	}
	if got.FontSize != 16 {
		t.Errorf("expected 16, got %d", got.FontSize)
	}

	if _, err := s.Settings.Set(ctx, "saveHistory", "false"); err != nil {
		t.Fatalf("set saveHistory: %v", err)
	}
	if _, err := s.Settings.Set(ctx, "reminderTime", "08:00"); err != nil {
		t.Fatalf("set reminderTime: %v", err)
	}

	loaded, _ := s.Settings.Load(ctx)
	if loaded.FontSize != 16 || loaded.SaveHistory || loaded.ReminderTime != "08:00" {
		t.Errorf("settings not persisted: %+v", loaded)
	}

	if _, err := s.Settings.Set(ctx, "nope", "1"); !errors.Is(err, ErrUnknownSetting) {
		t.Errorf("expected ErrUnknownSetting, got %v", err)
	}
	if _, err := s.Settings.Set(ctx, "fontSize", "99"); err == nil {
		t.Error("expected out-of-range fontSize to fail")
	}
	if _, err := s.Settings.Set(ctx, "fontSize", "14.5"); err == nil {
		t.Error("expected fractional fontSize to fail")
	}
	if _, err := s.Settings.Set(ctx, "showFortune", "maybe"); err == nil {
		t.Error("expected non-bool to fail")
	}
}

func TestSettingsReset(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStores(t, newClock())

	s.Settings.Set(ctx, "theme", "dark")
	got, err := s.Settings.Reset(ctx)
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	loaded, _ := s.Settings.Load(ctx)
	if got != loaded || loaded.Theme != "light" {
		t.Errorf("expected defaults after reset, got %+v", loaded)
	}
}

func TestSettingsMistypedKeyKeepsOthers(t *testing.T) {
	ctx := context.Background()
	s, mem := newTestStores(t, newClock())

	mem.Set(ctx, SettingsNS, `{"theme":"dark","saveHistory":false,"soundVolume":"80"}`)
	got, err := s.Settings.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Theme != "dark" || got.SaveHistory {
		t.Errorf("well-typed keys should apply, got theme=%s saveHistory=%v", got.Theme, got.SaveHistory)
	}
	if got.SoundVolume != model.DefaultSettings().SoundVolume {
		t.Errorf("mistyped soundVolume should keep its default, got %d", got.SoundVolume)
	}
}

func TestSettingsKeepsUnknownKeys(t *testing.T) {
	ctx := context.Background()
	s, mem := newTestStores(t, newClock())

	mem.Set(ctx, SettingsNS, `{"theme":"dark","legacyLayout":"grid"}`)
	if _, err := s.Settings.Set(ctx, "fontSize", "16"); err != nil {
		t.Fatalf("set: %v", err)
	}

	raw, _, _ := mem.Get(ctx, SettingsNS)
	var stored map[string]any
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		t.Fatalf("decode stored settings: %v", err)
	}
	if stored["legacyLayout"] != "grid" || stored["theme"] != "dark" || stored["fontSize"] != float64(16) {
		t.Errorf("unexpected stored settings: %s", raw)
	}

	if _, err := s.Settings.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}
	raw, _, _ = mem.Get(ctx, SettingsNS)
	stored = nil
	json.Unmarshal([]byte(raw), &stored)
	if _, ok := stored["legacyLayout"]; ok {
		t.Errorf("reset should drop unknown keys: %s", raw)
	}
}
