package planfile

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/studyplan/internal/availability"
	"github.com/abhisek/studyplan/internal/scheduler"
	"github.com/abhisek/studyplan/internal/workload"
)

const validPlan = `{
  "today": "2025-03-03",
  "deadline": "2025-03-10",
  "topics": [
    {"name": "Calculus", "weight": 3},
    {"name": "Poetry", "weight": 1}
  ],
  "slots": [
    {"day": "Monday", "start": "18:00", "end": "20:00"},
    {"day": "wed", "start": "07:00", "end": "08:30"}
  ]
}`

func TestLoad(t *testing.T) {
	p, err := Load(strings.NewReader(validPlan))
	require.NoError(t, err)

	req, err := p.Request()
	require.NoError(t, err)
	assert.True(t, req.Today.Equal(time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)))
	assert.True(t, req.Deadline.Equal(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, []workload.Topic{{Name: "Calculus", Weight: 3}, {Name: "Poetry", Weight: 1}}, req.Topics)
	assert.Equal(t, []availability.Slot{
		{Day: time.Monday, Start: "18:00", End: "20:00"},
		{Day: time.Wednesday, Start: "07:00", End: "08:30"},
	}, req.Slots)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not json", `{`},
		{"missing deadline", `{"topics":[{"name":"A","weight":1}],"slots":[{"day":"Mon","start":"09:00","end":"10:00"}]}`},
		{"weight out of range", `{"deadline":"2025-03-10","topics":[{"name":"A","weight":4}],"slots":[{"day":"Mon","start":"09:00","end":"10:00"}]}`},
		{"fractional weight", `{"deadline":"2025-03-10","topics":[{"name":"A","weight":1.5}],"slots":[{"day":"Mon","start":"09:00","end":"10:00"}]}`},
		{"bad clock", `{"deadline":"2025-03-10","topics":[{"name":"A","weight":1}],"slots":[{"day":"Mon","start":"9am","end":"10:00"}]}`},
		{"unknown field", `{"deadline":"2025-03-10","topics":[{"name":"A","weight":1}],"slots":[{"day":"Mon","start":"09:00","end":"10:00"}],"extra":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestRequest_BadWeekday(t *testing.T) {
	p := &Plan{
		Deadline: "2025-03-10",
		Topics:   []workload.Topic{{Name: "A", Weight: 1}},
		Slots:    []Slot{{Day: "Funday", Start: "09:00", End: "10:00"}},
	}
	_, err := p.Request()
	assert.Error(t, err)
}

func TestLoad_EmptyListsReachPlannerValidation(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"empty topics", `{"deadline":"2025-03-10","topics":[],"slots":[{"day":"Mon","start":"09:00","end":"10:00"}]}`, workload.ErrNoTopics},
		{"empty slots", `{"deadline":"2025-03-10","topics":[{"name":"A","weight":1}],"slots":[]}`, availability.ErrNoSlots},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Load(strings.NewReader(tt.doc))
			require.NoError(t, err)
			req, err := p.Request()
			require.NoError(t, err)
			req.Today = time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)

			_, err = scheduler.NewPlanner(nil, scheduler.Options{}).Generate(req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
