// Package main hosts the studentcard CLI.
//
// Running the binary without a subcommand prints the demo: field access by
// name and by key, the bound greeting, the canonical encoding, and the decoded
// record. Subcommands expose the same pieces individually (show, encode,
// decode) plus configuration scaffolding.
package main
