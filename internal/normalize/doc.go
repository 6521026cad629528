// Package normalize converts raw backend JSON envelopes into the canonical
// internal model.
//
// The backend wraps the same entities in different containers depending on
// endpoint and version: bare arrays, data wrappers, progress wrappers,
// one-level-deeper items/docs lists, or single objects standing in for a
// list. Each normalizer tries the known shapes in a fixed priority order,
// most structured first, and degrades to an empty result rather than
// failing the caller. Field projection goes through package resolve so
// identifier precedence stays auditable.
package normalize
