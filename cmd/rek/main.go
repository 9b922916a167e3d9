// Package main is the entry point for the REK CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/blockguard-sf/rek/internal/cmd"
	rekerrors "github.com/blockguard-sf/rek/internal/errors"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Only print if the command layer hasn't already printed it.
		var exitErr *rekerrors.ExitError
		if !errors.As(err, &exitErr) || !exitErr.Printed {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(cmd.ExitCodeFromError(err))
	}
}
