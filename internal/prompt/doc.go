// Package prompt renders the instruction sent to the generation backend from
// a validated curriculum request.
//
// Prompts are produced with text/template rather than html/template: the
// output is plain text for a language model and user values must appear
// verbatim. The default template is embedded in the binary; operators may
// replace it with their own file as long as it uses the same fields
// (.Subject, .Level, .Duration, .Goal).
package prompt
