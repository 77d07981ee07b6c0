package journal

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/roach88/contactsbook/internal/contact"
)

// Events returns journal events ordered by seq ASC, id ASC.
//
// Returns an empty slice (not nil) if nothing matches.
func (j *Journal) Events(ctx context.Context, f Filter) ([]Event, error) {
	query := `
		SELECT id, seq, action, phone, field, before, after, count, recorded_at
		FROM events`
	var args []any
	if f.Phone != "" {
		query += `
		WHERE phone = ? OR before LIKE ? OR after LIKE ?`
		like := `%"phone":"` + f.Phone + `"%`
		args = append(args, f.Phone, like, like)
	}
	query += `
		ORDER BY seq ASC, id COLLATE BINARY ASC`

	rows, err := j.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	events := []Event{}
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}

	if f.Limit > 0 && len(events) > f.Limit {
		events = events[len(events)-f.Limit:]
	}
	return events, nil
}

// lastSeq returns the highest stored seq, or 0 for an empty journal.
func (j *Journal) lastSeq(ctx context.Context) (int64, error) {
	var seq sql.NullInt64
	if err := j.db.QueryRowContext(ctx, `SELECT MAX(seq) FROM events`).Scan(&seq); err != nil {
		return 0, fmt.Errorf("query last seq: %w", err)
	}
	return seq.Int64, nil
}

func scanEvent(rows *sql.Rows) (Event, error) {
	var (
		ev             Event
		action         string
		before, after  string
		recordedAtText string
	)
	if err := rows.Scan(&ev.ID, &ev.Seq, &action, &ev.Phone, &ev.Field, &before, &after, &ev.Count, &recordedAtText); err != nil {
		return Event{}, fmt.Errorf("scan event: %w", err)
	}
	ev.Action = Action(action)

	var err error
	if ev.Before, err = unmarshalEntry(before); err != nil {
		return Event{}, fmt.Errorf("event %s before: %w", ev.ID, err)
	}
	if ev.After, err = unmarshalEntry(after); err != nil {
		return Event{}, fmt.Errorf("event %s after: %w", ev.ID, err)
	}
	if ev.RecordedAt, err = time.Parse(time.RFC3339Nano, recordedAtText); err != nil {
		return Event{}, fmt.Errorf("event %s recorded_at: %w", ev.ID, err)
	}
	return ev, nil
}

func unmarshalEntry(text string) (*contact.Entry, error) {
	if text == "" {
		return nil, nil
	}
	var e contact.Entry
	if err := json.Unmarshal([]byte(text), &e); err != nil {
		return nil, fmt.Errorf("unmarshal entry: %w", err)
	}
	return &e, nil
}
