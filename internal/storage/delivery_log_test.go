package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"examdeck/internal/model"
)

// failingStore rejects writes to exercise the in-memory overlay.
type failingStore struct {
	*MemoryStore
}

func (f failingStore) Set(context.Context, string, string) error {
	return errors.New("disk full")
}

func TestDeliveryLogMarkAndCheck(t *testing.T) {
	store := NewMemoryStore()
	deliveryLog := NewDeliveryLog(store)
	ctx := context.Background()
	key := model.DeliveryKey{ExamID: 2, Threshold: model.ThresholdOneHour}

	if deliveryLog.Delivered(ctx, key) {
		t.Fatal("expected fresh key to be undelivered")
	}
	if err := deliveryLog.MarkDelivered(ctx, key); err != nil {
		t.Fatalf("mark: %v", err)
	}
	if !deliveryLog.Delivered(ctx, key) {
		t.Fatal("expected key delivered after mark")
	}

	raw, err := store.Get(ctx, "2-1hour")
	if err != nil || raw != "true" {
		t.Fatalf("expected persisted delivery key, got %q err=%v", raw, err)
	}
}

func TestDeliveryLogSeesMarksFromEarlierSession(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	if err := store.Set(ctx, "3-30min", "true"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	deliveryLog := NewDeliveryLog(store)
	key := model.DeliveryKey{ExamID: 3, Threshold: model.ThresholdThirtyMinutes}
	if !deliveryLog.Delivered(ctx, key) {
		t.Fatal("expected persisted key from earlier session to count as delivered")
	}
}

func TestDeliveryLogMemoryAuthoritativeOnWriteFailure(t *testing.T) {
	deliveryLog := NewDeliveryLog(failingStore{NewMemoryStore()})
	ctx := context.Background()
	key := model.DeliveryKey{ExamID: 5, Threshold: model.ThresholdOneDay}

	if err := deliveryLog.MarkDelivered(ctx, key); err == nil {
		t.Fatal("expected error from failing store")
	}
	if !deliveryLog.Delivered(ctx, key) {
		t.Fatal("expected in-memory mark to survive failed durable write")
	}
}

func TestDeliveryLogRejectsInvalidKey(t *testing.T) {
	deliveryLog := NewDeliveryLog(NewMemoryStore())
	err := deliveryLog.MarkDelivered(context.Background(), model.DeliveryKey{ExamID: 0, Threshold: model.ThresholdOneDay})
	if err == nil {
		t.Fatal("expected validation error")
	}
}

func TestPruneDeliveredKeys(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	now := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)

	stale := model.Exam{ID: 1, Subject: "Old", StartAt: now.Add(-45 * 24 * time.Hour)}
	recent := model.Exam{ID: 2, Subject: "Recent", StartAt: now.Add(-2 * 24 * time.Hour)}

	seed := []string{"1-1day", "1-1hour", "2-1day"}
	for _, key := range seed {
		if err := store.Set(ctx, key, "true"); err != nil {
			t.Fatalf("seed %q: %v", key, err)
		}
	}
	if err := store.Set(ctx, SettingsKey, "{}"); err != nil {
		t.Fatalf("seed settings: %v", err)
	}

	pruned, err := PruneDeliveredKeys(ctx, store, []model.Exam{stale, recent}, now, 30*24*time.Hour)
	if err != nil {
		t.Fatalf("prune: %v", err)
	}
	if pruned != 2 {
		t.Fatalf("expected 2 pruned keys, got %d", pruned)
	}

	if _, err := store.Get(ctx, "1-1day"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected stale key removed, got: %v", err)
	}
	if _, err := store.Get(ctx, "2-1day"); err != nil {
		t.Fatalf("expected recent exam key kept: %v", err)
	}
	if _, err := store.Get(ctx, SettingsKey); err != nil {
		t.Fatalf("expected settings untouched: %v", err)
	}
}
