// Package resolve extracts canonical string identifiers from loosely shaped
// backend records.
//
// The backend is not contractually fixed: the same logical id may arrive
// under any of several field names ("id", "_id", "questionId", ...), as a
// string, as a number, or buried inside a nested object. ID walks an
// explicit, ordered alias list so the precedence is auditable; the first
// alias that yields a usable value wins. An empty result always means
// "unresolved", never a valid identifier.
package resolve
