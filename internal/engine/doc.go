// Package engine implements the lineup and timekeeping core: the lineup
// state machine, the match clock and per-player time ledger, the scoring
// event ledger with its derived score projection, roster cascades, and the
// lineup template and history stores.
//
// The engine is an explicit state container. Every mutation reads the
// current in-memory snapshot, takes exactly one wall-clock reading, computes
// the full next snapshot and installs it, then notifies the commit hook with
// the set of record classes that changed. Persistence is an observer of
// commits, never a participant in the mutation itself, which keeps the
// engine testable against an in-memory hook.
//
// Operations never halt the application: invalid runtime arguments are
// silent no-ops, and every defensive default exists so the caller can always
// proceed with a best-effort state.
package engine
