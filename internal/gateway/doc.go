// Package gateway is the store-and-forward SMS gateway: an HTTP client
// implementing domain.GatewayClient and the in-memory server it talks to.
//
// Endpoints:
//   - POST /msg/{addr}        enqueue one envelope for addr
//   - GET  /msg/{addr}?limit= peek at queued envelopes, oldest first
//   - POST /msg/{addr}/ack    drop the first {"count":N} envelopes
//   - GET  /healthz           liveness
//
// All bodies are JSON. Non-2xx statuses are returned by the client as errors
// carrying the method, URL and status text.
package gateway
