// Copyright (C) 2022, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package testutils

import (
	"crypto/rand"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/ava-labs/avalanchego/utils/perms"
	"github.com/ava-labs/stage-assets/pkg/application"
	"github.com/ava-labs/stage-assets/pkg/config"
	"github.com/ava-labs/stage-assets/pkg/ux"
	"github.com/stretchr/testify/require"
)

func SetupTest(t *testing.T) *require.Assertions {
	// use io.Discard to not print anything
	ux.NewUserLog(logging.NoLog{}, io.Discard)
	return require.New(t)
}

// SetupTestInTempDir returns an app whose project root is a fresh temp dir.
func SetupTestInTempDir(t *testing.T) *application.StageApp {
	testDir := t.TempDir()

	app := application.New()
	app.Setup(testDir, logging.NoLog{}, config.New())
	return app
}

// WriteRandomFile writes [size] random bytes to [dir]/[name] and returns them.
func WriteRandomFile(require *require.Assertions, dir string, name string, size int) []byte {
	content := make([]byte, size)
	_, err := rand.Read(content)
	require.NoError(err)
	require.NoError(os.MkdirAll(dir, perms.ReadWriteExecute))
	require.NoError(os.WriteFile(filepath.Join(dir, name), content, perms.ReadWrite))
	return content
}

// WriteWasmAssets writes a 1024 byte game.wasm and a 512 byte wasm_exec.js
// into the source assets dir of [app].
func WriteWasmAssets(require *require.Assertions, app *application.StageApp) map[string][]byte {
	return map[string][]byte{
		"game.wasm":    WriteRandomFile(require, app.GetSourceDir(), "game.wasm", 1024),
		"wasm_exec.js": WriteRandomFile(require, app.GetSourceDir(), "wasm_exec.js", 512),
	}
}
