package apperrors

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUsage        = errors.New("usage error")
)

// UsageError reports command-line input that could not be parsed at all,
// as opposed to parsed input that failed validation.
type UsageError struct {
	Flag   string
	Value  string
	Reason string
}

func (e *UsageError) Error() string {
	if e.Flag == "" {
		return e.Reason
	}
	return "invalid value " + quote(e.Value) + " for --" + e.Flag + ": " + e.Reason
}

func (e *UsageError) Unwrap() error {
	return ErrUsage
}

func quote(s string) string {
	return `"` + s + `"`
}
