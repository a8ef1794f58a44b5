// Package services implements the core use cases: submitting a daily
// culture rating and reporting rolling statistics.
//
// Services depend only on domain types and driven ports. Each request
// is an independent, stateless unit of work; the versioned backing
// file is the only shared resource, and its compare-and-swap write is
// the only serialization point between concurrent submitters.
package services
