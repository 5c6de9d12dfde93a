// Package main is the entry point for the cookie CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/opmodel/cookie/internal/cmd"
	oerrors "github.com/opmodel/cookie/internal/errors"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		var exitErr *oerrors.ExitError
		errors.As(oerrors.WithExitCode(err), &exitErr)
		// Only print if the command layer hasn't already printed it
		if !exitErr.Printed {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(exitErr.Code)
	}
}
