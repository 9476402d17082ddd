package planfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/studyplan/internal/workload"
)

func TestParseTopic(t *testing.T) {
	tests := []struct {
		in      string
		want    workload.Topic
		wantErr bool
	}{
		{in: "Calculus:3", want: workload.Topic{Name: "Calculus", Weight: 3}},
		{in: " Linear Algebra : 2 ", want: workload.Topic{Name: "Linear Algebra", Weight: 2}},
		{in: "Ch 1: Intro:1", want: workload.Topic{Name: "Ch 1: Intro", Weight: 1}},
		{in: "Calculus", wantErr: true},
		{in: "Calculus:hard", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTopic(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSlot(t *testing.T) {
	got, err := ParseSlot("Mon 18:00-20:00")
	require.NoError(t, err)
	assert.Equal(t, Slot{Day: "Mon", Start: "18:00", End: "20:00"}, got)

	got, err = ParseSlot("saturday 09:30 - 11:00")
	require.NoError(t, err)
	assert.Equal(t, Slot{Day: "saturday", Start: "09:30", End: "11:00"}, got)

	_, err = ParseSlot("Mon")
	assert.Error(t, err)
	_, err = ParseSlot("Mon 18:00")
	assert.Error(t, err)
}
