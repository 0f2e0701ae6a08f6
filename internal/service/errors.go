package service

import "errors"

// ErrPromptBuild is returned when a validated request cannot be rendered into
// a prompt. It indicates a broken prompt template, not bad user input.
var ErrPromptBuild = errors.New("failed to build prompt")
