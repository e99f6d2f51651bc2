// Package async is the orchestration layer behind the asynchronous item
// endpoints: a bounded worker pool, single-assignment future handles, a
// timeout/fallback wrapper, and a two-future combine.
//
// The contract every caller relies on: a future returned by Submit and
// wrapped with WithTimeout always resolves to a usable value of its declared
// type. Store faults, queue rejection, task panics, and deadline expiry are
// all translated to the operation's fallback value at the wrapper boundary;
// the only surfaced signal of the failure is one structured log entry.
//
// There is no cancellation. Work that outlives its deadline keeps running on
// its worker and its late result is discarded by the single-assignment
// future.
package async
