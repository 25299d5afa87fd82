// Package dispatch runs the per-message command state machine and the poll
// loop that feeds it.
//
// Every message moves through
//
//	Received -> FormatChecked -> Authenticated -> CapabilityChecked -> Executed -> Replied
//
// or leaves early through FormatRejected, AuthRejected or CapabilityRejected,
// which also end in Replied. Each message gets a fresh machine and exactly
// one reply; no handler runs and no device state changes before the
// password matched.
//
// Fragments of a multipart SMS arrive as separate messages and are handled
// independently, in arrival order. They are not reassembled.
package dispatch
