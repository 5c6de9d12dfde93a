package cmdutil

import (
	"errors"

	oerrors "github.com/opmodel/cookie/internal/errors"
	"github.com/opmodel/cookie/internal/output"
)

// PrintError logs err under msg. Detail errors are flattened into key-value
// pairs so the log line stays on one line.
func PrintError(msg string, err error) {
	var detail *oerrors.DetailError
	if errors.As(err, &detail) {
		keyvals := []interface{}{"reason", detail.Message}
		if detail.Location != "" {
			keyvals = append(keyvals, "location", detail.Location)
		}
		if detail.Hint != "" {
			keyvals = append(keyvals, "hint", detail.Hint)
		}
		output.Error(msg, keyvals...)
		return
	}
	output.Error(msg, "err", err)
}

// Failed prints err and returns it as an already printed ExitError carrying
// the exit code derived from err.
func Failed(msg string, err error) error {
	PrintError(msg, err)
	return &oerrors.ExitError{
		Code:    oerrors.ExitCodeFromError(err),
		Err:     err,
		Printed: true,
	}
}
