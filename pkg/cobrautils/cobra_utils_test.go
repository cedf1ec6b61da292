// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package cobrautils

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/ava-labs/stage-assets/pkg/ux"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func TestExactArgs(t *testing.T) {
	require := require.New(t)
	cmd := &cobra.Command{Use: "stage-assets"}

	require.NoError(ExactArgs(0)(cmd, nil))
	err := ExactArgs(0)(cmd, []string{"extra"})
	var usageErr UsageError
	require.ErrorAs(err, &usageErr)
	require.Contains(err.Error(), "Usage error")
}

func TestReportError(t *testing.T) {
	require := require.New(t)
	var errOut bytes.Buffer
	ux.NewUserLog(logging.NoLog{}, io.Discard)
	ux.Logger.ErrWriter = &errOut

	ReportError(errors.New("copying assets: disk full"))
	require.Equal("Error: copying assets: disk full\n", errOut.String())
}

func TestReportUsageError(t *testing.T) {
	require := require.New(t)
	var errOut bytes.Buffer
	cmd := &cobra.Command{Use: "stage-assets"}
	cmd.SetErr(&errOut)

	ReportError(NewUsageError(cmd, errors.New("accepts 0 arg(s), received 1")))
	require.Contains(errOut.String(), "Usage:")
	require.Contains(errOut.String(), "Usage error: accepts 0 arg(s), received 1")
}
