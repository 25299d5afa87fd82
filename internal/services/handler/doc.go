// Package handler maps command keywords to handlers and implements the
// built-in handlers: battery, location, call-log summary, SMS-inbox summary
// and the two light actuators.
//
// Handlers receive only an Env of system accessors and return either reply
// text or a *types.Error whose kind tells the dispatcher what went wrong
// (permission, not available, internal) and whose message is the reply
// text. A panicking handler is recovered at the registry boundary.
//
// Keyword lookup is case-insensitive and tolerates one leading '#'.
package handler
