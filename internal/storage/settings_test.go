package storage

import (
	"context"
	"testing"

	"examdeck/internal/model"
)

func TestLoadSettingsDefaultsWhenAbsent(t *testing.T) {
	store := NewMemoryStore()
	settings := LoadSettings(context.Background(), store)
	if settings != model.DefaultReminderSettings() {
		t.Fatalf("expected defaults, got %+v", settings)
	}
}

func TestLoadSettingsDefaultsWhenCorrupt(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	if err := store.Set(ctx, SettingsKey, "{not json"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	settings := LoadSettings(ctx, store)
	if settings != model.DefaultReminderSettings() {
		t.Fatalf("expected defaults for corrupt value, got %+v", settings)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	want := model.ReminderSettings{
		Enabled:             true,
		ThreeDaysBefore:     false,
		OneDayBefore:        true,
		OneHourBefore:       false,
		ThirtyMinutesBefore: true,
		Sound:               false,
	}
	if err := SaveSettings(ctx, store, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got := LoadSettings(ctx, store)
	if got != want {
		t.Fatalf("round trip mismatch: %+v vs %+v", got, want)
	}
}
