package domain

import "errors"

// errUnknownFailure stands in for a nil error passed to Failed.
var errUnknownFailure = errors.New("curriculum generation failed for an unknown reason")

// CurriculumResult is the outcome of one pipeline run: either the generated
// curriculum text or the error that stopped it, never both. The zero value is
// a failure.
type CurriculumResult struct {
	text string
	err  error
}

// Succeeded returns a successful result carrying text.
func Succeeded(text string) CurriculumResult {
	return CurriculumResult{text: text}
}

// Failed returns a failed result carrying err.
func Failed(err error) CurriculumResult {
	if err == nil {
		err = errUnknownFailure
	}
	return CurriculumResult{err: err}
}

// OK reports whether the result carries generated text.
func (r CurriculumResult) OK() bool {
	return r.err == nil && r.text != ""
}

// Text returns the generated curriculum, or "" for a failed result.
func (r CurriculumResult) Text() string {
	if !r.OK() {
		return ""
	}
	return r.text
}

// Err returns the failure cause, or nil for a successful result.
func (r CurriculumResult) Err() error {
	if r.OK() {
		return nil
	}
	if r.err == nil {
		return errUnknownFailure
	}
	return r.err
}

// ErrorMessage returns the failure description, or "" on success.
func (r CurriculumResult) ErrorMessage() string {
	if err := r.Err(); err != nil {
		return err.Error()
	}
	return ""
}
