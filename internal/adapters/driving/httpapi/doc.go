// Package httpapi is the HTTP transport for TeamPulse. It decodes
// inbound requests, calls the driving ports, and encodes the aggregate
// payloads; the core never sees an http.Request.
package httpapi
