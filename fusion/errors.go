package fusion

import "errors"

// ErrInputNotFound reports a missing input directory. The CLI maps it to a
// usage failure.
var ErrInputNotFound = errors.New("input directory not found")

// UsageError reports arguments that leave the run without a derivable
// output target.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string {
	return e.Msg
}
