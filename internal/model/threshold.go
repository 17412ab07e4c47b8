package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidThreshold   = errors.New("model: invalid reminder threshold")
	ErrInvalidDeliveryKey = errors.New("model: invalid delivery key")
)

// Threshold is a named lead time before an exam's start at which a
// reminder should fire.
type Threshold string

const (
	ThresholdThreeDays     Threshold = "threeDaysBefore"
	ThresholdOneDay        Threshold = "oneDayBefore"
	ThresholdOneHour       Threshold = "oneHourBefore"
	ThresholdThirtyMinutes Threshold = "thirtyMinBefore"
)

func AllThresholds() []Threshold {
	return []Threshold{
		ThresholdThreeDays,
		ThresholdOneDay,
		ThresholdOneHour,
		ThresholdThirtyMinutes,
	}
}

func (t Threshold) IsValid() bool {
	switch t {
	case ThresholdThreeDays, ThresholdOneDay, ThresholdOneHour, ThresholdThirtyMinutes:
		return true
	default:
		return false
	}
}

// Suffix is the stable short form used in persisted delivery keys.
func (t Threshold) Suffix() string {
	switch t {
	case ThresholdThreeDays:
		return "3days"
	case ThresholdOneDay:
		return "1day"
	case ThresholdOneHour:
		return "1hour"
	case ThresholdThirtyMinutes:
		return "30min"
	default:
		return ""
	}
}

// Lead is the nominal lead time before the exam start.
func (t Threshold) Lead() time.Duration {
	switch t {
	case ThresholdThreeDays:
		return 72 * time.Hour
	case ThresholdOneDay:
		return 24 * time.Hour
	case ThresholdOneHour:
		return time.Hour
	case ThresholdThirtyMinutes:
		return 30 * time.Minute
	default:
		return 0
	}
}

func thresholdFromSuffix(suffix string) (Threshold, bool) {
	for _, t := range AllThresholds() {
		if t.Suffix() == suffix {
			return t, true
		}
	}
	return "", false
}

// DeliveryKey identifies one (exam, threshold) reminder. Presence of
// the key in the store means the reminder was already emitted.
type DeliveryKey struct {
	ExamID    int64
	Threshold Threshold
}

func (k DeliveryKey) String() string {
	return fmt.Sprintf("%d-%s", k.ExamID, k.Threshold.Suffix())
}

func (k DeliveryKey) Validate() error {
	if k.ExamID <= 0 {
		return fmt.Errorf("%w: exam id %d", ErrInvalidDeliveryKey, k.ExamID)
	}
	if !k.Threshold.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidThreshold, k.Threshold)
	}
	return nil
}

// ParseDeliveryKey inverts DeliveryKey.String. Used when pruning stale
// keys out of the store.
func ParseDeliveryKey(raw string) (DeliveryKey, error) {
	idPart, suffix, found := strings.Cut(raw, "-")
	if !found {
		return DeliveryKey{}, fmt.Errorf("%w: %q", ErrInvalidDeliveryKey, raw)
	}
	id, err := strconv.ParseInt(idPart, 10, 64)
	if err != nil || id <= 0 {
		return DeliveryKey{}, fmt.Errorf("%w: %q", ErrInvalidDeliveryKey, raw)
	}
	threshold, ok := thresholdFromSuffix(suffix)
	if !ok {
		return DeliveryKey{}, fmt.Errorf("%w: %q", ErrInvalidDeliveryKey, raw)
	}
	return DeliveryKey{ExamID: id, Threshold: threshold}, nil
}
