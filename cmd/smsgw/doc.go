// Package main runs the in-memory SMS gateway used by remotesms during
// development and tests. It queues text envelopes per address until the
// addressee fetches and acknowledges them.
//
// HTTP API
//
//	POST /msg/{addr}
//	    Enqueue an Envelope destined to {addr}. The server assigns a UUIDv7
//	    id and stamps the current Unix time.
//
//	GET /msg/{addr}?limit=N
//	    Return up to N queued Envelopes for {addr}, oldest first. If limit is
//	    absent or zero, all queued envelopes are returned.
//
//	POST /msg/{addr}/ack { "count": N }
//	    Drop the first N queued envelopes for {addr}. If N exceeds the queue
//	    length, the queue is cleared.
//
//	GET /healthz
//	    Liveness probe.
//
// Behaviour
//
//   - All state is held in memory and lost on process exit.
//   - Responses are JSON. Non-2xx statuses carry a short error message.
//   - Every request is access-logged with method, path, status and duration.
//   - The default listen address is :8080.
package main
