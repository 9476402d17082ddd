package planfile

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/abhisek/studyplan/internal/workload"
)

// ParseTopic parses "Name:weight", e.g. "Linear Algebra:3". The name may
// itself contain colons; the weight follows the last one.
func ParseTopic(s string) (workload.Topic, error) {
	i := strings.LastIndex(s, ":")
	if i < 0 {
		return workload.Topic{}, fmt.Errorf("topic %q: want NAME:WEIGHT", s)
	}
	w, err := strconv.Atoi(strings.TrimSpace(s[i+1:]))
	if err != nil {
		return workload.Topic{}, fmt.Errorf("topic %q: weight must be a number", s)
	}
	return workload.Topic{Name: strings.TrimSpace(s[:i]), Weight: w}, nil
}

// ParseSlot parses "DAY HH:MM-HH:MM", e.g. "Mon 18:00-20:00".
func ParseSlot(s string) (Slot, error) {
	day, span, ok := strings.Cut(strings.TrimSpace(s), " ")
	if !ok {
		return Slot{}, fmt.Errorf("slot %q: want DAY HH:MM-HH:MM", s)
	}
	start, end, ok := strings.Cut(strings.TrimSpace(span), "-")
	if !ok {
		return Slot{}, fmt.Errorf("slot %q: want DAY HH:MM-HH:MM", s)
	}
	return Slot{Day: day, Start: strings.TrimSpace(start), End: strings.TrimSpace(end)}, nil
}
