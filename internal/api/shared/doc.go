// Package shared holds the request and response helpers used by the api
// handlers and middleware: trace IDs in the request context, bounded body
// decoding, and JSON/HTML responders that log redacted errors.
package shared
