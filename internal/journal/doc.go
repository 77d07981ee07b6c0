// Package journal provides a SQLite-backed audit log of contact mutations.
//
// Every successful add, update, delete and clear is appended as an Event.
// The journal is append-only; events are never rewritten.
//
// # Ordering
//
//   - Each event carries a seq from a logical clock that resumes from the
//     highest stored seq when the journal is reopened.
//   - Queries return events ORDER BY seq ASC, id ASC so reads are stable.
//
// # Idempotency
//
//   - Event IDs are UUIDv7 strings; inserting an existing ID is a no-op.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//
// The journal is optional. The contacts file remains the source of truth and
// a journal write failure never rolls back a saved mutation.
package journal
