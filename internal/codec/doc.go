// Package codec converts student data to and from text.
//
// JSON is the canonical form: compact, fields in declaration order, no HTML
// escaping. TOML and YAML are offered as alternate interchange formats with the
// same contract. Every entry point accepts or returns student.Data only, so a
// record's behavior never reaches the wire and a decoded value is always plain
// data.
package codec
