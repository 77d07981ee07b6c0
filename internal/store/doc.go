// Package store persists the contact book as a single JSON file.
//
// The whole book is read and written as one unit; there are no incremental
// updates. The file maps phone numbers to {name, email} objects:
//
//	{
//	    "5551234567": {
//	        "name": "John Doe",
//	        "email": ""
//	    }
//	}
//
// # Loading
//
// Load never fails. A missing, unreadable, empty or malformed file, or one
// whose top-level value is not an object, yields an empty book. Corrupt data
// is dropped rather than surfaced.
//
// # Saving
//
// Save replaces the file atomically: the book is written to a temporary file
// in the same directory, synced, and renamed over the target. Readers see the
// old file or the new one, never a partial write. A failed save removes the
// temporary file and leaves the target untouched.
//
// The file is not locked. Two processes saving concurrently cannot corrupt
// it, but the last writer wins.
package store
