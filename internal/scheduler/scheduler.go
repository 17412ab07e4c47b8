// Package scheduler owns the recurring reminder tick: once a minute it
// evaluates every exam against every armed threshold and emits exactly
// one event per newly crossed (exam, threshold) pair.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"examdeck/internal/clock"
	"examdeck/internal/model"
)

// DefaultInterval is the wall-clock period between ticks.
const DefaultInterval = 60 * time.Second

// Event is one reminder, shaped for the notification sink.
type Event struct {
	Exam      model.Exam
	Threshold model.Threshold
	Title     string
	Body      string
	Silent    bool
}

// DeliveryLog is the delivered-reminder bookkeeping the scheduler
// depends on. Marking must stick for the session even when durable
// persistence fails; the scheduler never retries a fired threshold.
type DeliveryLog interface {
	Delivered(ctx context.Context, key model.DeliveryKey) bool
	MarkDelivered(ctx context.Context, key model.DeliveryKey) error
}

type Scheduler struct {
	mu        sync.Mutex
	exams     []model.Exam
	settings  model.ReminderSettings
	delivered DeliveryLog
	out       chan Event
	stopCh    chan struct{}
	doneCh    chan struct{}
	interval  time.Duration
	running   bool
	dropped   uint64
}

func New(exams []model.Exam, settings model.ReminderSettings, delivered DeliveryLog, bufferSize int) *Scheduler {
	if bufferSize <= 0 {
		bufferSize = 1
	}
	return &Scheduler{
		exams:     exams,
		settings:  settings,
		delivered: delivered,
		out:       make(chan Event, bufferSize),
		interval:  DefaultInterval,
	}
}

// SetInterval overrides the tick period. Only useful before Start.
func (s *Scheduler) SetInterval(d time.Duration) {
	if d <= 0 {
		return
	}
	s.mu.Lock()
	s.interval = d
	s.mu.Unlock()
}

func (s *Scheduler) C() <-chan Event {
	return s.out
}

func (s *Scheduler) Dropped() uint64 {
	return atomic.LoadUint64(&s.dropped)
}

// Running reports whether the tick loop is active.
func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// UpdateSettings swaps the settings snapshot used by subsequent ticks.
// Disarmed thresholds stop firing; already-delivered pairs stay
// suppressed by the delivery log.
func (s *Scheduler) UpdateSettings(settings model.ReminderSettings) {
	s.mu.Lock()
	s.settings = settings
	s.mu.Unlock()
}

// SetExams replaces the exam list wholesale.
func (s *Scheduler) SetExams(exams []model.Exam) {
	s.mu.Lock()
	s.exams = exams
	s.mu.Unlock()
}

// Start activates the scheduler: one immediate tick, then one every
// interval. Starting an already-running scheduler is a no-op. The
// scheduler can be started again after Stop.
func (s *Scheduler) Start() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.stopCh = make(chan struct{})
	s.doneCh = make(chan struct{})
	stopCh, doneCh, interval := s.stopCh, s.doneCh, s.interval
	s.mu.Unlock()

	go s.loop(stopCh, doneCh, interval)
}

// Stop cancels the pending timer so no further ticks occur. Delivered
// keys are left untouched.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	stopCh, doneCh := s.stopCh, s.doneCh
	s.mu.Unlock()

	close(stopCh)
	<-doneCh
}

func (s *Scheduler) loop(stopCh, doneCh chan struct{}, interval time.Duration) {
	defer close(doneCh)

	// A threshold crossed while the scheduler was inactive fires right
	// away, once.
	s.Tick(time.Now())

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case now := <-ticker.C:
			s.Tick(now)
		case <-stopCh:
			return
		}
	}
}

// Tick runs one synchronous evaluation pass over all exams and armed
// thresholds. Each (exam, threshold) pair is independent; no ordering
// is guaranteed within a tick.
func (s *Scheduler) Tick(now time.Time) {
	s.mu.Lock()
	settings := s.settings
	exams := s.exams
	s.mu.Unlock()

	if !settings.Enabled {
		return
	}

	ctx := context.Background()
	for _, exam := range exams {
		if err := exam.Validate(); err != nil {
			log.Printf("scheduler: skipping exam %d this tick: %v", exam.ID, err)
			continue
		}
		for _, threshold := range model.AllThresholds() {
			if !settings.ThresholdEnabled(threshold) {
				continue
			}
			if !fires(exam, threshold, now) {
				continue
			}
			key := model.DeliveryKey{ExamID: exam.ID, Threshold: threshold}
			if s.delivered.Delivered(ctx, key) {
				continue
			}
			s.emit(buildEvent(exam, threshold, !settings.Sound))
			// Mark unconditionally once emission was attempted:
			// at most one delivery attempt per pair, ever.
			if err := s.delivered.MarkDelivered(ctx, key); err != nil {
				log.Printf("scheduler: record delivery %s: %v", key, err)
			}
		}
	}
}

func (s *Scheduler) emit(ev Event) {
	select {
	case s.out <- ev:
	default:
		atomic.AddUint64(&s.dropped, 1)
	}
}

// fires evaluates a threshold's firing rule. Day-granularity
// thresholds are armed for the whole window where the ceiling of the
// remaining days matches; sub-day thresholds match on the rounded-up
// hour or minute count.
func fires(exam model.Exam, threshold model.Threshold, now time.Time) bool {
	if !clock.IsUpcoming(exam, now) {
		return false
	}
	switch threshold {
	case model.ThresholdThreeDays:
		return clock.DaysUntil(exam, now) == 3
	case model.ThresholdOneDay:
		return clock.DaysUntil(exam, now) == 1
	case model.ThresholdOneHour:
		return clock.HoursUntil(exam, now) == 1
	case model.ThresholdThirtyMinutes:
		return clock.MinutesUntil(exam, now) == 30
	default:
		return false
	}
}

func buildEvent(exam model.Exam, threshold model.Threshold, silent bool) Event {
	body := ""
	switch threshold {
	case model.ThresholdThreeDays:
		body = fmt.Sprintf("%s exam is in 3 days (%s)", exam.Subject, exam.StartAt.Format("Mon 15:04"))
	case model.ThresholdOneDay:
		body = fmt.Sprintf("%s exam is tomorrow at %s", exam.Subject, exam.StartAt.Format("15:04"))
	case model.ThresholdOneHour:
		body = fmt.Sprintf("%s exam starts in 1 hour!", exam.Subject)
	case model.ThresholdThirtyMinutes:
		body = fmt.Sprintf("%s exam starts in 30 minutes! Get ready", exam.Subject)
	}
	return Event{
		Exam:      exam,
		Threshold: threshold,
		Title:     "Exam reminder",
		Body:      body,
		Silent:    silent,
	}
}
