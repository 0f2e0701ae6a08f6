// Package generation defines the boundary between the curriculum pipeline and
// external AI/LLM text-generation services.
//
// A Generator is the backend capability: given a prompt, return text or an
// error. Concrete backends live in internal/platform (Gemini and
// OpenAI-compatible chat APIs). Client wraps a Generator for the pipeline: it
// bounds each call with a timeout, classifies failures as *GenerationError
// and returns a domain.CurriculumResult instead of a raw error, so callers
// must handle both branches.
package generation
