// Package pomodoro implements a focus timer cycling between work and break
// phases. The timer does not run by itself; the caller drives it with Tick
// once per second.
package pomodoro

import (
	"fmt"
	"strings"
	"time"
)

// Mode is a timer phase.
type Mode string

const (
	ModeWork       Mode = "work"
	ModeShortBreak Mode = "short-break"
	ModeLongBreak  Mode = "long-break"
)

// Label returns the mode in words, e.g. "short break".
func (m Mode) Label() string {
	return strings.ReplaceAll(string(m), "-", " ")
}

// Config sets phase lengths.
type Config struct {
	Work       time.Duration
	ShortBreak time.Duration
	LongBreak  time.Duration

	// LongBreakEvery is how many completed work phases earn a long break.
	LongBreakEvery int
}

// DefaultConfig returns the classic 25/5/15 cycle with a long break every
// fourth work phase.
func DefaultConfig() Config {
	return Config{
		Work:           25 * time.Minute,
		ShortBreak:     5 * time.Minute,
		LongBreak:      15 * time.Minute,
		LongBreakEvery: 4,
	}
}

func (c Config) length(m Mode) time.Duration {
	switch m {
	case ModeShortBreak:
		return c.ShortBreak
	case ModeLongBreak:
		return c.LongBreak
	default:
		return c.Work
	}
}

// Event describes a finished phase.
type Event struct {
	Ended     Mode
	Next      Mode
	WorkCount int
}

// Notifier is told when a phase runs out.
type Notifier interface {
	Notify(Event)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(Event)

func (f NotifierFunc) Notify(e Event) { f(e) }

// Timer is a Pomodoro countdown state machine.
type Timer struct {
	cfg       Config
	notifier  Notifier
	mode      Mode
	remaining time.Duration
	running   bool
	workCount int
	status    string
}

// New creates a stopped timer in work mode. notifier may be nil.
func New(cfg Config, notifier Notifier) *Timer {
	t := &Timer{cfg: cfg, notifier: notifier}
	t.load(ModeWork)
	return t
}

func (t *Timer) load(m Mode) {
	t.mode = m
	t.remaining = t.cfg.length(m)
	if m == ModeWork {
		t.status = "Ready to focus!"
	} else {
		t.status = fmt.Sprintf("Ready for a %s!", m.Label())
	}
}

// Start resumes the countdown. It returns false if already running.
func (t *Timer) Start() bool {
	if t.running {
		return false
	}
	t.running = true
	if t.mode == ModeWork {
		t.status = "FOCUS TIME!"
	} else {
		t.status = "BREAK TIME!"
	}
	return true
}

// Pause stops the countdown, keeping the remaining time. It returns false
// if already paused.
func (t *Timer) Pause() bool {
	if !t.running {
		return false
	}
	t.running = false
	t.status = fmt.Sprintf("Paused (%s mode)", t.mode.Label())
	return true
}

// Reset pauses and returns to a full work phase. Completed work count is kept.
func (t *Timer) Reset() {
	t.running = false
	t.load(ModeWork)
}

// Tick advances a running timer by one second. When the phase runs out the
// timer stops, the notifier fires, and the next phase is loaded. Tick
// reports whether a phase ended.
func (t *Timer) Tick() bool {
	if !t.running {
		return false
	}
	if t.remaining > time.Second {
		t.remaining -= time.Second
		return false
	}

	t.running = false
	ended := t.mode
	var next Mode
	if ended == ModeWork {
		t.workCount++
		if t.cfg.LongBreakEvery > 0 && t.workCount%t.cfg.LongBreakEvery == 0 {
			next = ModeLongBreak
		} else {
			next = ModeShortBreak
		}
	} else {
		next = ModeWork
	}

	t.load(next)
	switch next {
	case ModeLongBreak:
		t.status = "Long Break Time!"
	case ModeShortBreak:
		t.status = "Short Break Time!"
	default:
		t.status = "Break Over. Start Next Session!"
	}

	if t.notifier != nil {
		t.notifier.Notify(Event{Ended: ended, Next: next, WorkCount: t.workCount})
	}
	return true
}

func (t *Timer) Mode() Mode               { return t.mode }
func (t *Timer) Remaining() time.Duration { return t.remaining }
func (t *Timer) Running() bool            { return t.running }
func (t *Timer) WorkCount() int           { return t.workCount }
func (t *Timer) Status() string           { return t.status }

// Display formats the remaining time as MM:SS.
func (t *Timer) Display() string {
	secs := int(t.remaining / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

// Progress returns the elapsed fraction of the current phase in [0, 1].
func (t *Timer) Progress() float64 {
	total := t.cfg.length(t.mode)
	if total <= 0 {
		return 0
	}
	return 1 - float64(t.remaining)/float64(total)
}
