package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return cr.Wrapf(err, format, args...)
}

func New(msg string) error {
	return cr.New(msg)
}

func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// Is also matches marks applied with Mark.
func Is(err, reference error) bool {
	return cr.Is(err, reference)
}

// WithDetail attaches a user-facing detail string that survives further wrapping.
func WithDetail(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return cr.WithDetailf(err, format, args...)
}

// Details returns every detail attached along the chain, outermost first.
func Details(err error) []string {
	if err == nil {
		return nil
	}
	return cr.GetAllDetails(err)
}

func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	s := fmt.Sprintf("%+v", err)
	lines := strings.Split(s, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
