package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"examdeck/internal/model"
)

// SettingsKey is the store key holding the serialized reminder settings.
const SettingsKey = "notificationSettings"

// LoadSettings reads persisted reminder settings. An absent or
// malformed value falls back to the documented defaults; startup never
// fails on bad settings.
func LoadSettings(ctx context.Context, store Store) model.ReminderSettings {
	raw, err := store.Get(ctx, SettingsKey)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Printf("storage: read settings: %v; using defaults", err)
		}
		return model.DefaultReminderSettings()
	}
	var settings model.ReminderSettings
	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		log.Printf("storage: malformed settings %q: %v; using defaults", raw, err)
		return model.DefaultReminderSettings()
	}
	return settings
}

func SaveSettings(ctx context.Context, store Store, settings model.ReminderSettings) error {
	payload, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := store.Set(ctx, SettingsKey, string(payload)); err != nil {
		return fmt.Errorf("persist settings: %w", err)
	}
	return nil
}
