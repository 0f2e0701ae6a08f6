package domain

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Level is the target audience of a curriculum.
type Level string

// Supported levels.
const (
	LevelBeginner     Level = "Beginner"
	LevelIntermediate Level = "Intermediate"
	LevelAdvanced     Level = "Advanced"
)

// DefaultLevel is applied when the form omits a level.
const DefaultLevel = LevelBeginner

func (l Level) String() string { return string(l) }

// Levels lists the supported levels in display order.
func Levels() []Level {
	return []Level{LevelBeginner, LevelIntermediate, LevelAdvanced}
}

// ParseLevel matches name case-insensitively against the supported levels.
func ParseLevel(name string) (Level, bool) {
	for _, l := range Levels() {
		if strings.EqualFold(strings.TrimSpace(name), string(l)) {
			return l, true
		}
	}
	return Level(name), false
}

// RawCurriculumForm holds the field values exactly as submitted.
type RawCurriculumForm struct {
	Subject  string `json:"subject"`
	Level    string `json:"level"`
	Duration string `json:"duration"`
	Goal     string `json:"goal"`
}

// CurriculumRequest is a validated set of curriculum parameters. It lives
// for a single HTTP request.
type CurriculumRequest struct {
	Subject  string `form:"subject"  validate:"required"`
	Level    Level  `form:"level"    validate:"required,oneof=Beginner Intermediate Advanced"`
	Duration string `form:"duration" validate:"required"`
	// Goal is optional; empty means no special focus.
	Goal string `form:"goal"`
}

// HasGoal reports whether a special goal was supplied.
func (r CurriculumRequest) HasGoal() bool {
	return r.Goal != ""
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name := f.Tag.Get("form"); name != "" {
			return name
		}
		return strings.ToLower(f.Name)
	})
	return v
}

// NewCurriculumRequest validates raw form values and produces a
// CurriculumRequest. Subject, duration and goal are trimmed; a blank level
// defaults to Beginner and a known level is normalised to its canonical
// spelling.
//
// It returns a *MissingFieldError when subject or duration is blank and an
// *InvalidFieldError for an unrecognised level. Subject is checked first.
func NewCurriculumRequest(raw RawCurriculumForm) (CurriculumRequest, error) {
	req := CurriculumRequest{
		Subject:  strings.TrimSpace(raw.Subject),
		Duration: strings.TrimSpace(raw.Duration),
		Goal:     strings.TrimSpace(raw.Goal),
		Level:    DefaultLevel,
	}

	if strings.TrimSpace(raw.Level) != "" {
		req.Level, _ = ParseLevel(raw.Level)
	}

	if err := validate.Struct(req); err != nil {
		return CurriculumRequest{}, translateValidationError(err)
	}

	return req, nil
}

func translateValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return errors.Join(ErrValidation, err)
	}

	// Missing fields take precedence over unsupported values.
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			return &MissingFieldError{Field: fe.Field()}
		}
	}
	fe := verrs[0]
	return &InvalidFieldError{Field: fe.Field(), Value: fmt.Sprint(fe.Value())}
}
