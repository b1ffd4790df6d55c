// Package payments defines the data contract for the Wakala payments API:
// the payment resources the API returns and the request payloads used to
// create or patch them.
//
// The five resource variants form a closed union discriminated by the wire
// "type" tag. ParseResource narrows inbound JSON to a concrete variant,
// BuildRequest assembles an outbound creation payload, ApplyPatch produces a
// tags-only update, and Narrow recovers a concrete variant from a Payment
// value. The package performs no I/O; transport, retries and persistence
// belong to the calling application.
package payments
