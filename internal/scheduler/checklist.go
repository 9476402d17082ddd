package scheduler

import (
	"time"

	"github.com/abhisek/studyplan/internal/timeutil"
)

type reviewEntry struct {
	topic       string
	completedOn time.Time
}

// reviewChecklist tracks hard topics awaiting a spaced review. Scan order is
// insertion order so ties between eligible topics resolve deterministically.
//
// Entries older than ReviewMaxAgeDays are never purged; they are skipped by
// the eligibility check and linger until the run ends.
type reviewChecklist struct {
	entries  []reviewEntry
	reviewed map[string]bool
}

func newReviewChecklist() *reviewChecklist {
	return &reviewChecklist{reviewed: make(map[string]bool)}
}

// Mark records that topic was completed on date. An existing entry keeps its
// position and takes the newer date. Topics already reviewed are ignored.
func (c *reviewChecklist) Mark(topic string, date time.Time) {
	if c.reviewed[topic] {
		return
	}
	for i := range c.entries {
		if c.entries[i].topic == topic {
			c.entries[i].completedOn = date
			return
		}
	}
	c.entries = append(c.entries, reviewEntry{topic: topic, completedOn: date})
}

// TakeEligible removes and returns the first topic whose completion age on
// date falls inside the review window.
func (c *reviewChecklist) TakeEligible(date time.Time) (string, bool) {
	for i, e := range c.entries {
		age := timeutil.DaysBetween(e.completedOn, date)
		if age < ReviewMinAgeDays || age > ReviewMaxAgeDays {
			continue
		}
		c.entries = append(c.entries[:i], c.entries[i+1:]...)
		c.reviewed[e.topic] = true
		return e.topic, true
	}
	return "", false
}

// Len returns the number of pending entries, stale ones included.
func (c *reviewChecklist) Len() int {
	return len(c.entries)
}
