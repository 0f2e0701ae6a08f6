// Package middleware provides the HTTP middleware mounted on the router:
// request tracing and Prometheus request metrics.
package middleware
