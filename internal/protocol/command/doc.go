// Package command parses the body of an inbound text message into an
// authentication token and a command token.
//
// # Wire format
//
//	#<password> <COMMAND>
//
// The body is trimmed and split on whitespace; anything other than exactly two
// tokens is a format error. One leading '#' is removed from the first token,
// which is then the password candidate, compared verbatim by the caller. The
// second token is upper-cased. Keyword strips one leading '#' from it so that
// both "GET_BATTERY" and "#GET_BATTERY" name the same command.
//
// # Limitations
//
// Each transport fragment is parsed on its own. A command split across two
// fragments is not reassembled and will usually be rejected as malformed.
package command
