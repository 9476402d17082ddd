package pomodoro

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shortConfig() Config {
	return Config{
		Work:           3 * time.Second,
		ShortBreak:     time.Second,
		LongBreak:      2 * time.Second,
		LongBreakEvery: 4,
	}
}

// runOut ticks until the current phase ends.
func runOut(t *testing.T, tm *Timer) {
	t.Helper()
	require.True(t, tm.Running() || tm.Start())
	for i := 0; i < 3600; i++ {
		if tm.Tick() {
			return
		}
	}
	t.Fatal("phase never ended")
}

func TestNew(t *testing.T) {
	tm := New(DefaultConfig(), nil)
	assert.Equal(t, ModeWork, tm.Mode())
	assert.Equal(t, 25*time.Minute, tm.Remaining())
	assert.False(t, tm.Running())
	assert.Equal(t, "25:00", tm.Display())
	assert.Equal(t, "Ready to focus!", tm.Status())
}

func TestTickOnlyWhileRunning(t *testing.T) {
	tm := New(shortConfig(), nil)
	assert.False(t, tm.Tick())
	assert.Equal(t, 3*time.Second, tm.Remaining())

	assert.True(t, tm.Start())
	assert.False(t, tm.Start(), "second start is a no-op")
	tm.Tick()
	assert.Equal(t, 2*time.Second, tm.Remaining())

	assert.True(t, tm.Pause())
	assert.False(t, tm.Pause())
	assert.Equal(t, "Paused (work mode)", tm.Status())
	tm.Tick()
	assert.Equal(t, 2*time.Second, tm.Remaining(), "pause keeps elapsed state")
}

func TestCycle(t *testing.T) {
	var events []Event
	tm := New(shortConfig(), NotifierFunc(func(e Event) { events = append(events, e) }))

	want := []Mode{
		ModeShortBreak, ModeWork,
		ModeShortBreak, ModeWork,
		ModeShortBreak, ModeWork,
		ModeLongBreak, ModeWork,
		ModeShortBreak,
	}
	for i, next := range want {
		runOut(t, tm)
		assert.Equal(t, next, tm.Mode(), "phase %d", i)
		assert.False(t, tm.Running(), "timer stops at the end of a phase")
	}

	require.Len(t, events, len(want))
	assert.Equal(t, Event{Ended: ModeWork, Next: ModeLongBreak, WorkCount: 4}, events[6])
	assert.Equal(t, 5, tm.WorkCount())
}

func TestPhaseEndStatus(t *testing.T) {
	tm := New(shortConfig(), nil)
	runOut(t, tm)
	assert.Equal(t, "Short Break Time!", tm.Status())
	assert.Equal(t, time.Second, tm.Remaining())

	runOut(t, tm)
	assert.Equal(t, "Break Over. Start Next Session!", tm.Status())
	assert.Equal(t, 3*time.Second, tm.Remaining())
}

func TestReset(t *testing.T) {
	tm := New(shortConfig(), nil)
	runOut(t, tm)
	tm.Start()
	tm.Reset()

	assert.Equal(t, ModeWork, tm.Mode())
	assert.False(t, tm.Running())
	assert.Equal(t, 3*time.Second, tm.Remaining())
	assert.Equal(t, 1, tm.WorkCount())
}

func TestProgress(t *testing.T) {
	tm := New(Config{Work: 4 * time.Second, ShortBreak: time.Second, LongBreak: time.Second, LongBreakEvery: 4}, nil)
	assert.Equal(t, 0.0, tm.Progress())
	tm.Start()
	tm.Tick()
	assert.InDelta(t, 0.25, tm.Progress(), 1e-9)
}

func TestModeLabel(t *testing.T) {
	if got := ModeLongBreak.Label(); got != "long break" {
		t.Errorf("Label() = %q, want %q", got, "long break")
	}
}
