// Package api handles incoming HTTP requests for the curriculum designer:
// the HTML form, the form submission that renders a result page, and a JSON
// endpoint for programmatic clients. It translates HTTP concerns into calls
// on the curriculum service and maps its errors onto status codes and safe
// user-facing messages.
package api
