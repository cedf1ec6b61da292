// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package cobrautils

import (
	"errors"
	"fmt"
	"os"

	"github.com/ava-labs/stage-assets/pkg/ux"

	"github.com/spf13/cobra"
)

type UsageError struct {
	cmd *cobra.Command
	err error
}

func (e UsageError) Error() string {
	return fmt.Sprintf("Usage error: %s", e.err)
}

func (e UsageError) Unwrap() error {
	return e.err
}

func NewUsageError(cmd *cobra.Command, err error) UsageError {
	return UsageError{
		cmd: cmd,
		err: err,
	}
}

func ExactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		err := cobra.ExactArgs(n)(cmd, args)
		if err != nil {
			err = NewUsageError(cmd, err)
		}
		return err
	}
}

// ReportError writes [err] to the error stream: usage errors together with the
// command usage, anything else as a one line diagnostic.
func ReportError(err error) {
	var usageErr UsageError
	if errors.As(err, &usageErr) {
		usageErr.cmd.PrintErrln(usageErr.cmd.UsageString())
		usageErr.cmd.PrintErrln(usageErr)
		return
	}
	ux.Logger.PrintErrToUser("Error: %s", err)
}

// HandleErrors reports [err] and exits with status 1. A nil error is a no-op.
func HandleErrors(err error) {
	if err != nil {
		ReportError(err)
		os.Exit(1)
	}
}

func ConfigureRootCmd(cmd *cobra.Command) {
	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return NewUsageError(cmd, err)
	})
}
