// Package team defines the domain types for the roster, games, lineups and
// scoring ledgers, plus the sanitization boundary that reconstructs them
// from untrusted persisted documents.
//
// Types in this package carry no behavior beyond accessors; all state
// transitions live in the engine package. The Sanitize* functions are the
// only code that ever touches loosely-typed document data.
package team
