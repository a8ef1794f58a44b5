// Package github implements driven.FileStore on top of the GitHub
// repository contents API, using a repo as the system's backing store.
//
// The contents API already carries an optimistic-concurrency contract:
// every read returns the blob's git SHA, and every write must present
// the SHA it read. A write against a stale SHA is rejected by GitHub,
// which this package surfaces as domain.ErrVersionConflict. That makes
// the repo file a compare-and-swap register without any extra locking.
package github
