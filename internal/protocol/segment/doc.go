// Package segment splits reply text into transport-sized parts.
//
// A text that fits a single message part is sent as one segment. Longer text
// is cut into parts of Limits.Multi runes, leaving headroom for the
// concatenation header the carrier adds to multipart messages. Cuts fall on
// rune boundaries and the parts, joined in order, reproduce the input.
//
// No alphabet detection is done. The default SMS limits fit GSM-7 text; a
// transport that sends UCS-2 should be configured with the UCS2 limits.
package segment
