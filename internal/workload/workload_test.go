package workload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpand_UnitDurationsSumToWeight(t *testing.T) {
	for w := MinWeight; w <= MaxWeight; w++ {
		wl, err := Expand([]Topic{{Name: "Topic", Weight: w}})
		require.NoError(t, err)

		sum := 0
		for _, u := range wl.Units {
			assert.LessOrEqual(t, u.Duration, MaxUnitMinutes)
			assert.Equal(t, u.Duration, u.Remaining)
			sum += u.Duration
		}
		assert.Equal(t, w*60, sum, "weight %d", w)
		assert.Equal(t, sum, wl.TotalMinutes)
	}
}

func TestExpand_SplitLabels(t *testing.T) {
	wl, err := Expand([]Topic{{Name: "Quantum Mechanics", Weight: 3}})
	require.NoError(t, err)
	require.Len(t, wl.Units, 2)

	assert.Equal(t, "Quantum Mechanics (Part 1)", wl.Units[0].Label)
	assert.Equal(t, 120, wl.Units[0].Duration)
	assert.Equal(t, "Quantum Mechanics (Part 2)", wl.Units[1].Label)
	assert.Equal(t, 60, wl.Units[1].Duration)
	for _, u := range wl.Units {
		assert.Equal(t, "Quantum Mechanics", u.Topic)
		assert.Equal(t, 3, u.Weight)
	}
}

func TestExpand_NoSuffixWithinCap(t *testing.T) {
	wl, err := Expand([]Topic{{Name: "C++ Syntax", Weight: 1}, {Name: "Fourier", Weight: 2}})
	require.NoError(t, err)
	require.Len(t, wl.Units, 2)
	assert.Equal(t, "C++ Syntax", wl.Units[0].Label)
	assert.Equal(t, "Fourier", wl.Units[1].Label)
	assert.Equal(t, 180, wl.TotalMinutes)
}

func TestExpand_Errors(t *testing.T) {
	tests := []struct {
		name   string
		topics []Topic
		want   error
	}{
		{"empty list", nil, ErrNoTopics},
		{"blank name", []Topic{{Name: "  ", Weight: 1}}, ErrEmptyTopicName},
		{"weight zero", []Topic{{Name: "A", Weight: 0}}, ErrInvalidWeight},
		{"weight four", []Topic{{Name: "A", Weight: 4}}, ErrInvalidWeight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Expand(tt.topics)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestUnitConsume(t *testing.T) {
	u := Unit{Duration: 120, Remaining: 120}

	assert.Equal(t, 60, u.Consume(60))
	assert.Equal(t, 60, u.Remaining)
	assert.False(t, u.Completed)

	assert.Equal(t, 60, u.Consume(90))
	assert.Equal(t, 0, u.Remaining)
	assert.True(t, u.Completed)

	assert.Equal(t, 0, u.Consume(60))
	assert.Equal(t, 0, u.Remaining)
}
