// Package driving defines the inbound ports: the service interfaces
// the transport adapters (HTTP, CLI) call into the core through.
package driving
