// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package ux

import (
	"bytes"
	"testing"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/stretchr/testify/require"
)

func TestUserLogStreams(t *testing.T) {
	require := require.New(t)
	var out, errOut bytes.Buffer
	NewUserLog(logging.NoLog{}, &out)
	Logger.ErrWriter = &errOut

	Logger.PrintToUser("Copied %s to %s", "game.wasm", "dist/assets")
	Logger.PrintErrToUser("Error copying assets: %s", "boom")

	require.Equal("Copied game.wasm to dist/assets\n", out.String())
	require.Equal("Error copying assets: boom\n", errOut.String())
}

func TestGreenCheckmarkToUser(t *testing.T) {
	require := require.New(t)
	color.NoColor = true
	var out bytes.Buffer
	NewUserLog(logging.NoLog{}, &out)

	Logger.GreenCheckmarkToUser("%s matches", "game.wasm")
	Logger.RedXToUser("%s differs", "wasm_exec.js")

	require.Equal("✓ game.wasm matches\n✗ wasm_exec.js differs\n", out.String())
}

func TestPrintTable(t *testing.T) {
	require := require.New(t)
	var out bytes.Buffer
	NewUserLog(logging.NoLog{}, &out)

	tbl := DefaultTable("plan", table.Row{"Category", "File"})
	tbl.AppendRow(table.Row{"dist/assets", "game.wasm"})
	Logger.PrintTable(tbl)

	require.Contains(out.String(), "PLAN")
	require.Contains(out.String(), "game.wasm")
}

func TestConvertToStringWithThousandSeparator(t *testing.T) {
	require := require.New(t)
	require.Equal("1_024", ConvertToStringWithThousandSeparator(1024))
	require.Equal("512", ConvertToStringWithThousandSeparator(512))
}
