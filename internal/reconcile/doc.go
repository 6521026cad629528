// Package reconcile merges the backend's view of question progress with
// the locally cached progress identifiers.
//
// A pass fetches the catalog (fatal on failure), best-effort fetches the
// bulk progress list, then backfills per id: every question id in the
// union of the persisted cache and the fresh bulk results that still lacks
// a status gets an individual lookup keyed by its cached progress id. The
// bulk endpoint has been observed stale, paginated, and simply down; the
// per-id pass is what keeps progress recorded in an earlier session from
// vanishing. Lookups run concurrently and are isolated: one failing or
// hanging does not cancel the rest, and the cache is only touched after
// all of them have been joined.
//
// The engine owns the only durable state (the id cache) and is invoked
// serially by its caller; concurrent calls into one Engine are not
// supported.
package reconcile
