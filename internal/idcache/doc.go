// Package idcache persists the questionId -> progressId map across
// sessions.
//
// The map is the only durable state in the system. It is loaded once when
// the reconciliation engine starts and merged back after every successful
// pass; merging only adds or overwrites entries, it never prunes. Corrupt
// or missing data degrades to an empty map so a damaged cache can never
// block reconciliation; at worst previously recorded progress has to be
// rediscovered from the backend.
//
// Two backends are provided: a flat JSON file (guarded by a file lock so
// concurrent CLI invocations do not clobber each other's merges) and a
// single-table SQLite database.
package idcache
