package journal

import (
	"fmt"
	"time"

	"github.com/roach88/contactsbook/internal/contact"
)

// Action names the mutation an event records.
type Action string

const (
	ActionAdd    Action = "add"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionClear  Action = "clear"
)

// Event is one journal record.
//
// Before and After hold the affected entry on each side of the mutation:
// add has only After, delete only Before, update both (a phone update shows
// the old key in Before and the new key in After). Clear has neither and
// records how many contacts were removed in Count.
type Event struct {
	ID         string         `json:"id" yaml:"id"`
	Seq        int64          `json:"seq" yaml:"seq"`
	Action     Action         `json:"action" yaml:"action"`
	Phone      string         `json:"phone,omitempty" yaml:"phone,omitempty"`
	Field      string         `json:"field,omitempty" yaml:"field,omitempty"`
	Before     *contact.Entry `json:"before,omitempty" yaml:"before,omitempty"`
	After      *contact.Entry `json:"after,omitempty" yaml:"after,omitempty"`
	Count      int            `json:"count,omitempty" yaml:"count,omitempty"`
	RecordedAt time.Time      `json:"recorded_at" yaml:"recorded_at"`
}

// Validate checks the fields Append requires.
func (e Event) Validate() error {
	switch e.Action {
	case ActionAdd, ActionUpdate, ActionDelete, ActionClear:
	default:
		return fmt.Errorf("unknown action %q", e.Action)
	}
	if e.Action != ActionClear && e.Phone == "" {
		return fmt.Errorf("%s event requires a phone", e.Action)
	}
	return nil
}

// Filter narrows Events results.
type Filter struct {
	// Phone matches events whose phone, before or after entry mention it.
	Phone string

	// Limit caps the number of events returned, keeping the most recent.
	// Zero means no limit.
	Limit int
}
