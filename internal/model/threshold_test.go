package model

import (
	"testing"
	"time"
)

func TestThresholdSuffixAndLead(t *testing.T) {
	cases := map[Threshold]struct {
		suffix string
		lead   time.Duration
	}{
		ThresholdThreeDays:     {"3days", 72 * time.Hour},
		ThresholdOneDay:        {"1day", 24 * time.Hour},
		ThresholdOneHour:       {"1hour", time.Hour},
		ThresholdThirtyMinutes: {"30min", 30 * time.Minute},
	}
	for threshold, want := range cases {
		if !threshold.IsValid() {
			t.Fatalf("expected %q valid", threshold)
		}
		if got := threshold.Suffix(); got != want.suffix {
			t.Fatalf("suffix of %q: expected %q, got %q", threshold, want.suffix, got)
		}
		if got := threshold.Lead(); got != want.lead {
			t.Fatalf("lead of %q: expected %s, got %s", threshold, want.lead, got)
		}
	}
	if Threshold("twoWeeksBefore").IsValid() {
		t.Fatal("expected unknown threshold to be invalid")
	}
}

func TestDeliveryKeyString(t *testing.T) {
	key := DeliveryKey{ExamID: 4, Threshold: ThresholdOneDay}
	if key.String() != "4-1day" {
		t.Fatalf("unexpected key string: %q", key.String())
	}
	if err := key.Validate(); err != nil {
		t.Fatalf("expected valid key, got: %v", err)
	}
}

func TestDeliveryKeyValidateRejectsBadInputs(t *testing.T) {
	if err := (DeliveryKey{ExamID: 0, Threshold: ThresholdOneDay}).Validate(); err == nil {
		t.Fatal("expected error for zero exam id")
	}
	if err := (DeliveryKey{ExamID: 1, Threshold: "sometime"}).Validate(); err == nil {
		t.Fatal("expected error for unknown threshold")
	}
}

func TestParseDeliveryKeyRoundTrip(t *testing.T) {
	for _, threshold := range AllThresholds() {
		key := DeliveryKey{ExamID: 7, Threshold: threshold}
		parsed, err := ParseDeliveryKey(key.String())
		if err != nil {
			t.Fatalf("parse %q: %v", key.String(), err)
		}
		if parsed != key {
			t.Fatalf("round trip mismatch: %#v vs %#v", parsed, key)
		}
	}
}

func TestParseDeliveryKeyRejectsGarbage(t *testing.T) {
	for _, raw := range []string{"", "notificationSettings", "1-", "-1day", "x-1day", "1-2weeks"} {
		if _, err := ParseDeliveryKey(raw); err == nil {
			t.Fatalf("expected parse failure for %q", raw)
		}
	}
}

func TestDefaultReminderSettings(t *testing.T) {
	s := DefaultReminderSettings()
	if s.Enabled {
		t.Fatal("expected reminders disabled by default")
	}
	if !s.Sound {
		t.Fatal("expected sound on by default")
	}
	for _, threshold := range AllThresholds() {
		if !s.ThresholdEnabled(threshold) {
			t.Fatalf("expected threshold %q armed by default", threshold)
		}
	}
	if s.ThresholdEnabled("twoWeeksBefore") {
		t.Fatal("expected unsupported threshold to report disabled")
	}
}
