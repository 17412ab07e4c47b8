package model

// ReminderSettings controls whether reminders fire at all and which
// thresholds are armed. Persisted as JSON under a single store key.
type ReminderSettings struct {
	Enabled             bool `json:"enabled"`
	ThreeDaysBefore     bool `json:"threeDaysBefore"`
	OneDayBefore        bool `json:"oneDayBefore"`
	OneHourBefore       bool `json:"oneHourBefore"`
	ThirtyMinutesBefore bool `json:"thirtyMinBefore"`
	Sound               bool `json:"sound"`
}

// DefaultReminderSettings is the fallback when no persisted settings
// exist or the persisted value is malformed: reminders off, every
// threshold armed, sound on.
func DefaultReminderSettings() ReminderSettings {
	return ReminderSettings{
		Enabled:             false,
		ThreeDaysBefore:     true,
		OneDayBefore:        true,
		OneHourBefore:       true,
		ThirtyMinutesBefore: true,
		Sound:               true,
	}
}

func (s ReminderSettings) ThresholdEnabled(t Threshold) bool {
	switch t {
	case ThresholdThreeDays:
		return s.ThreeDaysBefore
	case ThresholdOneDay:
		return s.OneDayBefore
	case ThresholdOneHour:
		return s.OneHourBefore
	case ThresholdThirtyMinutes:
		return s.ThirtyMinutesBefore
	default:
		return false
	}
}
