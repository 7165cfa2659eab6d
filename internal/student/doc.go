// Package student models the demo record: a fixed set of typed data fields plus
// a greeting behavior bound to the record that owns it.
//
// Data is the plain, serializable half of the record. Student embeds Data and
// carries the behavior, so static field access (s.Name) and keyed access
// (s.Get("name")) resolve to the same storage. Only Data crosses the codec
// boundary; a decoded record never has behavior attached.
package student
