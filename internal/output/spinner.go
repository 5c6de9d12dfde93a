package output

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh/spinner"
)

// SpinnerOption configures a spinner.
type SpinnerOption func(*spinnerConfig)

type spinnerConfig struct {
	title string
}

// WithTitle sets the spinner title.
func WithTitle(title string) SpinnerOption {
	return func(c *spinnerConfig) {
		c.title = title
	}
}

// RunWithSpinner executes action while showing a spinner on interactive
// terminals. Without a TTY the action runs directly.
// Returns the action's error if any.
func RunWithSpinner(ctx context.Context, action func() error, opts ...SpinnerOption) error {
	cfg := &spinnerConfig{title: "Working..."}
	for _, opt := range opts {
		opt(cfg)
	}

	if !IsTTY() {
		return action()
	}

	var actionErr error
	err := spinner.New().
		Title(cfg.title).
		Context(ctx).
		Action(func() {
			actionErr = action()
		}).
		Run()
	if err != nil {
		return fmt.Errorf("spinner error: %w", err)
	}

	return actionErr
}
