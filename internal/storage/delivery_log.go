package storage

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"examdeck/internal/model"
)

const deliveredValue = "true"

// DeliveryLog records which (exam, threshold) reminders have been
// emitted. Marks go to the durable store and to an in-memory overlay;
// if the durable write fails the in-memory mark stays authoritative
// for the session, so a reminder is never attempted twice.
type DeliveryLog struct {
	mu    sync.Mutex
	store Store
	seen  map[string]bool
}

func NewDeliveryLog(store Store) *DeliveryLog {
	return &DeliveryLog{store: store, seen: make(map[string]bool)}
}

func (l *DeliveryLog) Delivered(ctx context.Context, key model.DeliveryKey) bool {
	l.mu.Lock()
	if l.seen[key.String()] {
		l.mu.Unlock()
		return true
	}
	l.mu.Unlock()

	_, err := l.store.Get(ctx, key.String())
	return err == nil
}

func (l *DeliveryLog) MarkDelivered(ctx context.Context, key model.DeliveryKey) error {
	if err := key.Validate(); err != nil {
		return err
	}
	l.mu.Lock()
	l.seen[key.String()] = true
	l.mu.Unlock()

	if err := l.store.Set(ctx, key.String(), deliveredValue); err != nil {
		return fmt.Errorf("persist delivery key %s: %w", key, err)
	}
	return nil
}

// PruneDeliveredKeys deletes delivery keys for exams whose start has
// receded more than maxAge into the past. Stale keys are harmless, so
// a failed delete skips that key rather than aborting the sweep.
func PruneDeliveredKeys(ctx context.Context, store Store, exams []model.Exam, now time.Time, maxAge time.Duration) (int, error) {
	pruned := 0
	for _, exam := range exams {
		if now.Sub(exam.StartAt) <= maxAge {
			continue
		}
		keys, err := store.Keys(ctx, fmt.Sprintf("%d-", exam.ID))
		if err != nil {
			return pruned, fmt.Errorf("list delivery keys for exam %d: %w", exam.ID, err)
		}
		for _, raw := range keys {
			key, parseErr := model.ParseDeliveryKey(raw)
			if parseErr != nil || key.ExamID != exam.ID {
				continue
			}
			if err := store.Delete(ctx, raw); err != nil {
				log.Printf("storage: prune delivery key %s: %v", raw, err)
				continue
			}
			pruned++
		}
	}
	return pruned, nil
}
