// Package store is the persistence gateway: a SQLite-backed durable
// key-value store of named JSON record documents, one row per record class.
//
// The store plays two roles. On load it is the defensive boundary: each
// document passes through the team package sanitizers, and a document that
// cannot be parsed at all is discarded and its row cleared, never preserved
// for recovery. On write it is the engine's commit hook: each committed
// mutation writes its dirty record classes through in one transaction.
package store
