package materialize

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/abhisek/studyplan/internal/availability"
	"github.com/abhisek/studyplan/internal/scheduler"
	"github.com/abhisek/studyplan/internal/workload"
)

var monday = time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)

func generate(t *testing.T, req scheduler.Request) *scheduler.Result {
	t.Helper()
	n := 0
	p := scheduler.NewPlanner(zap.NewNop(), scheduler.Options{NewID: func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}})
	res, err := p.Generate(req)
	require.NoError(t, err)
	return res
}

func TestMaterialize_GroupsAndLabels(t *testing.T) {
	res := generate(t, scheduler.Request{
		Today:    monday,
		Deadline: monday.AddDate(0, 0, 7),
		Topics:   []workload.Topic{{Name: "Topic X", Weight: 1}},
		Slots:    []availability.Slot{{Day: time.Monday, Start: "18:00", End: "20:00"}},
	})

	v := Materialize(res)
	require.Len(t, v.Groups, 1, "empty days are skipped")

	g := v.Groups[0]
	assert.Equal(t, "2025-03-03", g.DateKey)
	assert.Equal(t, "Monday, Mar 3", g.Header)
	require.Len(t, g.Items, 2)
	assert.Equal(t, "Topic X", g.Items[0].Session.Subject)
	assert.Equal(t, "18:00 - 19:00 (60 min)", g.Items[0].Display)
	assert.False(t, g.Items[0].Review)
	assert.Equal(t, scheduler.FillerSubject, g.Items[1].Session.Subject)
	assert.True(t, g.Items[1].Review)

	assert.Equal(t, 1, v.WorkloadHours)
	assert.Equal(t, 4, v.AvailableHours)
	assert.Empty(t, v.Warning)
	assert.False(t, v.NoPlacement)
}

func TestMaterialize_Warning(t *testing.T) {
	res := &scheduler.Result{
		WorkloadMinutes:  601,
		AvailableMinutes: 179,
		CapacityWarning:  true,
	}
	v := Materialize(res)
	assert.Equal(t, 11, v.WorkloadHours)
	assert.Equal(t, 2, v.AvailableHours)
	assert.Contains(t, v.Warning, "Workload (11 hours) exceeds available time (2 hours)")
}

func TestMaterialize_NoPlacement(t *testing.T) {
	res := generate(t, scheduler.Request{
		Today:    monday,
		Deadline: monday.AddDate(0, 0, 2),
		Topics:   []workload.Topic{{Name: "Topic", Weight: 1}},
		Slots:    []availability.Slot{{Day: time.Friday, Start: "18:00", End: "20:00"}},
	})

	v := Materialize(res)
	assert.Empty(t, v.Groups)
	assert.True(t, v.NoPlacement)
	assert.Equal(t, NoPlacementMessage, v.Message)
}

func TestMaterialize_Idempotent(t *testing.T) {
	res := generate(t, scheduler.Request{
		Today:    monday,
		Deadline: monday.AddDate(0, 0, 10),
		Topics:   []workload.Topic{{Name: "Calculus", Weight: 3}, {Name: "Poetry", Weight: 2}},
		Slots: []availability.Slot{
			{Day: time.Monday, Start: "18:00", End: "21:00"},
			{Day: time.Wednesday, Start: "07:00", End: "09:00"},
			{Day: time.Thursday, Start: "18:00", End: "20:00"},
		},
	})

	assert.Equal(t, Materialize(res), Materialize(res))
}

func TestDisplay(t *testing.T) {
	if got := Display("09:00", "10:00", 60); got != "09:00 - 10:00 (60 min)" {
		t.Errorf("Display() = %q", got)
	}
}
