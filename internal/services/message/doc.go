// Package message sends and receives plain-text messages over the SMS
// gateway.
//
// Outgoing bodies are cut into transport segments and posted in order.
// Incoming envelopes are fetched, converted to IncomingMessage values and
// acknowledged so the gateway does not deliver them twice.
package message
