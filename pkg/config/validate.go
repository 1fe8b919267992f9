package config

import (
	"fmt"

	"github.com/my-go-utils/nogging/pkg/logging"
)

// ValidationError represents a single validation error with context.
type ValidationError struct {
	Path    string // e.g., "app.handlers[1].type"
	Message string // e.g., "unknown handler type"
	Hint    string // e.g., "expected StreamHandler or FileHandler"
}

func (e ValidationError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("%s: %s; %s", e.Path, e.Message, e.Hint)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// Validate checks every entry of the document and aggregates all errors,
// allowing the caller to print all issues at once. Apply itself is laxer:
// unknown handler types are skipped with a warning at apply time, and only
// construction errors abort.
func (d Document) Validate() []error {
	var errs []error
	for _, e := range d {
		errs = append(errs, e.Spec.validate(e.Name)...)
	}
	return errs
}

func (s LoggerSpec) validate(path string) []error {
	var errs []error

	if s.Level != nil {
		if _, err := s.Level.Resolve(); err != nil {
			errs = append(errs, ValidationError{
				Path:    path + ".level",
				Message: fmt.Sprintf("unknown severity %q", s.Level.String()),
				Hint:    "expected DEBUG, INFO, WARNING, ERROR or CRITICAL",
			})
		}
	}

	if s.Handlers == nil {
		return errs
	}
	for i, h := range *s.Handlers {
		hpath := fmt.Sprintf("%s.handlers[%d]", path, i)

		switch h.Type {
		case logging.KindStream:
		case logging.KindFile:
			if h.Filename == "" {
				errs = append(errs, ValidationError{
					Path:    hpath + ".filename",
					Message: "must not be empty for FileHandler",
				})
			}
		default:
			errs = append(errs, ValidationError{
				Path:    hpath + ".type",
				Message: fmt.Sprintf("unknown handler type %q", h.Type),
				Hint:    "expected StreamHandler or FileHandler",
			})
		}

		if h.Level != nil {
			if _, err := h.Level.Resolve(); err != nil {
				errs = append(errs, ValidationError{
					Path:    hpath + ".level",
					Message: fmt.Sprintf("unknown severity %q", h.Level.String()),
					Hint:    "expected DEBUG, INFO, WARNING, ERROR or CRITICAL",
				})
			}
		}
		if h.Format != nil {
			if _, err := logging.NewFormatter(*h.Format); err != nil {
				errs = append(errs, ValidationError{
					Path:    hpath + ".format",
					Message: err.Error(),
				})
			}
		}
	}
	return errs
}
