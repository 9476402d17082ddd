// Package planfile loads scheduling requests from JSON plan files.
package planfile

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/abhisek/studyplan/internal/availability"
	"github.com/abhisek/studyplan/internal/scheduler"
	"github.com/abhisek/studyplan/internal/timeutil"
	"github.com/abhisek/studyplan/internal/workload"
)

//go:embed schema.json
var schemaJSON []byte

const schemaURL = "schema://studyplan/plan.json"

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// Plan is the on-disk form of a scheduling request.
type Plan struct {
	Today    string           `json:"today,omitempty"`
	Deadline string           `json:"deadline"`
	Topics   []workload.Topic `json:"topics"`
	Slots    []Slot           `json:"slots"`
}

// Slot is a weekly availability window with a named weekday.
type Slot struct {
	Day   string `json:"day"`
	Start string `json:"start"`
	End   string `json:"end"`
}

func schema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
		if err != nil {
			compileErr = fmt.Errorf("parse plan schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, doc); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}

// Load reads and validates a plan file.
func Load(r io.Reader) (*Plan, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read plan: %w", err)
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	sch, err := schema()
	if err != nil {
		return nil, err
	}
	if err := sch.Validate(doc); err != nil {
		return nil, fmt.Errorf("plan validation failed: %w", err)
	}

	var p Plan
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode plan: %w", err)
	}
	return &p, nil
}

// Request converts the plan into a scheduler request. An empty deadline is
// left zero for the planner to reject.
func (p *Plan) Request() (scheduler.Request, error) {
	var req scheduler.Request

	if p.Deadline != "" {
		deadline, err := timeutil.ParseDate(p.Deadline)
		if err != nil {
			return req, fmt.Errorf("deadline: %w", err)
		}
		req.Deadline = deadline
	}

	if p.Today != "" {
		today, err := timeutil.ParseDate(p.Today)
		if err != nil {
			return req, fmt.Errorf("today: %w", err)
		}
		req.Today = today
	}

	req.Topics = p.Topics
	for i, s := range p.Slots {
		day, err := timeutil.ParseWeekday(s.Day)
		if err != nil {
			return req, fmt.Errorf("slot %d: %w", i+1, err)
		}
		req.Slots = append(req.Slots, availability.Slot{Day: day, Start: s.Start, End: s.End})
	}
	return req, nil
}
