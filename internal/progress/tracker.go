package progress

import (
	"sync"
	"time"
)

// DefaultDelay is the pause between the last objective and the completion notice.
const DefaultDelay = 600 * time.Millisecond

// Tracker observes (command, output) pairs for one learner and marks
// objectives complete. Once every objective is done it sends a completion
// event to the notify callback after the configured delay.
type Tracker struct {
	mu         sync.Mutex
	objectives []Objective
	done       []bool
	delay      time.Duration
	notify     func(Event)
	timer      *time.Timer
}

// NewTracker returns a tracker with no objectives. notify may be nil.
func NewTracker(delay time.Duration, notify func(Event)) *Tracker {
	if delay < 0 {
		delay = 0
	}
	return &Tracker{delay: delay, notify: notify}
}

// SetObjectives replaces the current objective list and clears progress.
func (t *Tracker) SetObjectives(objectives []Objective) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stopLocked()
	t.objectives = append([]Objective(nil), objectives...)
	t.done = make([]bool, len(objectives))
}

// Observe checks one processed command against the pending objectives and
// returns an event for each objective it completed, in objective order.
func (t *Tracker) Observe(command, output string) []Event {
	t.mu.Lock()
	defer t.mu.Unlock()

	var events []Event
	for i, o := range t.objectives {
		if t.done[i] || !o.Matches(command, output) {
			continue
		}
		t.done[i] = true
		events = append(events, Event{Kind: EventObjective, Message: "✅ Objective complete: " + o.Title})
	}

	if len(events) > 0 && t.completeLocked() && t.timer == nil {
		t.timer = time.AfterFunc(t.delay, t.fireComplete)
	}
	return events
}

func (t *Tracker) fireComplete() {
	t.mu.Lock()
	notify := t.notify
	t.mu.Unlock()

	if notify != nil {
		notify(Event{Kind: EventComplete, Message: "🎉 Sub-lesson complete!"})
	}
}

// Completed reports how many objectives are done out of the total.
func (t *Tracker) Completed() (done, total int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, d := range t.done {
		if d {
			done++
		}
	}
	return done, len(t.done)
}

// Complete reports whether every objective has been met. A tracker with no
// objectives is never complete.
func (t *Tracker) Complete() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.completeLocked()
}

func (t *Tracker) completeLocked() bool {
	if len(t.done) == 0 {
		return false
	}
	for _, d := range t.done {
		if !d {
			return false
		}
	}
	return true
}

// Stop cancels a pending completion notification.
func (t *Tracker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()
}

func (t *Tracker) stopLocked() {
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}
