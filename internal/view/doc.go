// Package view renders the HTML pages of the curriculum form: the input form
// and the result page. Templates are embedded in the binary, and generated
// text is sanitized before it reaches a page.
package view
