package update

import (
	"time"

	"examdeck/internal/clock"
)

// countdownWindow is the span over which the countdown progress bar
// fills: the bar starts moving three days out, like the earliest
// reminder threshold.
const countdownWindow = 72 * time.Hour

func (m *Model) refreshCountdown(now time.Time) {
	next, ok := clock.NextExam(m.Exams, now)
	if !ok {
		m.Countdown = CountdownState{}
		return
	}
	remaining := clock.Remaining(next, now)
	m.Countdown = CountdownState{
		HasNext:   true,
		Subject:   next.Subject,
		When:      next.Day + " " + next.StartAt.Format("2006-01-02 15:04"),
		Remaining: clock.Decompose(remaining),
		Pct:       countdownPct(remaining),
	}
}

func countdownPct(remaining time.Duration) float64 {
	if remaining <= 0 {
		return 1
	}
	if remaining >= countdownWindow {
		return 0
	}
	return 1 - float64(remaining)/float64(countdownWindow)
}
