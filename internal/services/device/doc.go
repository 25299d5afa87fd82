// Package device holds the shared actuator state of the device.
//
// State is owned by one State value created at start-up and handed to both
// the command handlers (writers) and any presentation observer (readers).
// Observers subscribe for change notifications; a slow observer only ever
// sees the latest state, never a backlog.
package device
