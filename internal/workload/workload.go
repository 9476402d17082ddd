package workload

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// MinutesPerWeight is the estimated study time per difficulty point.
	MinutesPerWeight = 60

	// MaxUnitMinutes caps the length of a single work unit.
	MaxUnitMinutes = 120

	// MinWeight and MaxWeight bound a topic's difficulty weight.
	MinWeight = 1
	MaxWeight = 3
)

var (
	ErrNoTopics       = errors.New("at least one topic/task required")
	ErrEmptyTopicName = errors.New("topic name must not be empty")
	ErrInvalidWeight  = errors.New("topic weight must be between 1 and 3")
)

// Topic is a user-submitted subject with a difficulty weight.
type Topic struct {
	Name   string `json:"name"`
	Weight int    `json:"weight"`
}

// EstimatedMinutes returns the total study time a topic needs.
func (t Topic) EstimatedMinutes() int {
	return t.Weight * MinutesPerWeight
}

// Unit is an independently schedulable chunk of a topic.
type Unit struct {
	// Topic is the original, unsuffixed topic name.
	Topic string
	// Label is the display name, suffixed with "(Part k)" for split topics.
	Label     string
	Duration  int
	Weight    int
	Remaining int
	Completed bool
}

// Consume takes up to max minutes from the unit and returns what was taken.
func (u *Unit) Consume(max int) int {
	taken := min(max, u.Remaining)
	if taken < 0 {
		taken = 0
	}
	u.Remaining -= taken
	if u.Remaining == 0 {
		u.Completed = true
	}
	return taken
}

// Workload is the expanded, ordered list of work units for a run.
type Workload struct {
	Units        []Unit
	TotalMinutes int
}

// Expand validates topics and splits each into units of at most MaxUnitMinutes.
func Expand(topics []Topic) (Workload, error) {
	if len(topics) == 0 {
		return Workload{}, ErrNoTopics
	}

	var wl Workload
	for i, t := range topics {
		name := strings.TrimSpace(t.Name)
		if name == "" {
			return Workload{}, fmt.Errorf("topic %d: %w", i+1, ErrEmptyTopicName)
		}
		if t.Weight < MinWeight || t.Weight > MaxWeight {
			return Workload{}, fmt.Errorf("topic %q: %w (got %d)", name, ErrInvalidWeight, t.Weight)
		}

		estimated := t.EstimatedMinutes()
		split := estimated > MaxUnitMinutes
		remaining := estimated
		for part := 1; remaining > 0; part++ {
			d := min(remaining, MaxUnitMinutes)
			label := name
			if split {
				label = fmt.Sprintf("%s (Part %d)", name, part)
			}
			wl.Units = append(wl.Units, Unit{
				Topic:     name,
				Label:     label,
				Duration:  d,
				Weight:    t.Weight,
				Remaining: d,
			})
			remaining -= d
			wl.TotalMinutes += d
		}
	}
	return wl, nil
}
