// Package driven defines the outbound ports: interfaces the core
// services call and infrastructure adapters implement.
//
// The only shared resource in the system is the versioned backing file,
// so the surface here is deliberately small: a FileStore with a
// compare-and-swap write contract, and a Clock so day-sensitive logic
// is testable.
package driven
