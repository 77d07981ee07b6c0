package journal

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/roach88/contactsbook/internal/contact"
)

// Append records an event and returns it with ID, Seq and RecordedAt filled.
// Caller-supplied IDs are kept; inserting an existing ID is silently ignored.
func (j *Journal) Append(ctx context.Context, ev Event) (Event, error) {
	if err := ev.Validate(); err != nil {
		return Event{}, fmt.Errorf("append event: %w", err)
	}
	if ev.ID == "" {
		ev.ID = j.ids.Generate()
	}
	ev.Seq = j.clock.Next()
	if ev.RecordedAt.IsZero() {
		ev.RecordedAt = j.now().UTC()
	}

	before, err := marshalEntry(ev.Before)
	if err != nil {
		return Event{}, fmt.Errorf("append event: %w", err)
	}
	after, err := marshalEntry(ev.After)
	if err != nil {
		return Event{}, fmt.Errorf("append event: %w", err)
	}

	_, err = j.db.ExecContext(ctx, `
		INSERT INTO events
		(id, seq, action, phone, field, before, after, count, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		ev.ID,
		ev.Seq,
		string(ev.Action),
		ev.Phone,
		ev.Field,
		before,
		after,
		ev.Count,
		ev.RecordedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return Event{}, fmt.Errorf("append event: %w", err)
	}

	return ev, nil
}

// marshalEntry stores an optional entry as JSON TEXT; nil becomes "".
func marshalEntry(e *contact.Entry) (string, error) {
	if e == nil {
		return "", nil
	}
	data, err := json.Marshal(e)
	if err != nil {
		return "", fmt.Errorf("marshal entry: %w", err)
	}
	return string(data), nil
}
