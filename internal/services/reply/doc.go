// Package reply delivers reply text to the originating address as ordered
// transport segments. A failed segment aborts the rest of that reply and is
// reported to the logger; nothing is retried or returned to the caller.
package reply
