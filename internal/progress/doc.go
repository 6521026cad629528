// Package progress defines the three-state lifecycle of a question's
// progress and its legal transitions, independent of transport.
//
// Parse is total: any token the backend sends (or omits) maps onto one of
// pending, attempted, or solved. The transition table is what the
// reconciliation engine consults before issuing mutating calls; the
// progress-identifier precondition itself is enforced by the engine, not
// here.
package progress
