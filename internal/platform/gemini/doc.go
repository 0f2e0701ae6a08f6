// Package gemini provides an implementation of the generation.Generator interface
// that uses Google's Gemini API for generating curricula from a prompt.
//
// This package is an infrastructure adapter: it connects the curriculum pipeline
// to Google's external Gemini service without exposing the details of the SDK to
// the rest of the application.
//
// Key components:
//
// 1. Generator:
//   - Implements the generation.Generator interface
//   - Sends the prompt as the sole user message with the fixed system instruction
//   - Applies the configured temperature and output token limit
//
// 2. Response Processing:
//   - Concatenates the text parts of the first candidate
//   - Maps blocked prompts and safety stops to generation.ErrContentBlocked
//   - Maps missing candidates or content to generation.ErrInvalidResponse
//
// The package depends on the google.golang.org/genai client library for
// authentication, request formatting and transport.
package gemini
