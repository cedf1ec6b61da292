// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package watcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/stretchr/testify/require"
)

const testDebounce = 50 * time.Millisecond

func startWatcher(t *testing.T, dir string, onChange func() error) {
	w, err := New(dir, []string{"game.wasm", "wasm_exec.js"}, testDebounce, logging.NoLog{})
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, onChange)
	}()
	t.Cleanup(func() {
		cancel()
		require.NoError(t, <-done)
		require.NoError(t, w.Close())
	})
}

func TestWatcherDebouncesStagedFileChanges(t *testing.T) {
	require := require.New(t)
	dir := t.TempDir()
	var calls atomic.Int32
	startWatcher(t, dir, func() error {
		calls.Add(1)
		return nil
	})

	for i := 0; i < 5; i++ {
		require.NoError(os.WriteFile(filepath.Join(dir, "game.wasm"), []byte{byte(i)}, 0o600))
	}
	require.Eventually(func() bool {
		return calls.Load() == 1
	}, 5*time.Second, 10*time.Millisecond)
	time.Sleep(4 * testDebounce)
	require.Equal(int32(1), calls.Load())

	require.NoError(os.WriteFile(filepath.Join(dir, "wasm_exec.js"), []byte("loader"), 0o600))
	require.Eventually(func() bool {
		return calls.Load() == 2
	}, 5*time.Second, 10*time.Millisecond)
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	require := require.New(t)
	dir := t.TempDir()
	var calls atomic.Int32
	startWatcher(t, dir, func() error {
		calls.Add(1)
		return nil
	})

	require.NoError(os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>"), 0o600))
	time.Sleep(6 * testDebounce)
	require.Equal(int32(0), calls.Load())
}

func TestWatcherKeepsRunningAfterCallbackError(t *testing.T) {
	require := require.New(t)
	dir := t.TempDir()
	var calls atomic.Int32
	startWatcher(t, dir, func() error {
		calls.Add(1)
		return errors.New("disk full")
	})

	require.NoError(os.WriteFile(filepath.Join(dir, "game.wasm"), []byte("a"), 0o600))
	require.Eventually(func() bool {
		return calls.Load() == 1
	}, 5*time.Second, 10*time.Millisecond)
	require.NoError(os.WriteFile(filepath.Join(dir, "game.wasm"), []byte("b"), 0o600))
	require.Eventually(func() bool {
		return calls.Load() == 2
	}, 5*time.Second, 10*time.Millisecond)
}

func TestNewCreatesMissingDir(t *testing.T) {
	require := require.New(t)
	dir := filepath.Join(t.TempDir(), "src", "assets")
	var calls atomic.Int32
	startWatcher(t, dir, func() error {
		calls.Add(1)
		return nil
	})
	require.DirExists(dir)

	require.NoError(os.WriteFile(filepath.Join(dir, "game.wasm"), []byte("first build"), 0o600))
	require.Eventually(func() bool {
		return calls.Load() == 1
	}, 5*time.Second, 10*time.Millisecond)
}

func TestNewUncreatableDir(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "src")
	require.NoError(t, os.WriteFile(blocker, []byte("not a dir"), 0o600))

	_, err := New(filepath.Join(blocker, "assets"), []string{"game.wasm"}, testDebounce, logging.NoLog{})
	require.Error(t, err)
}
