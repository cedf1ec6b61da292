// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package utils

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestExpandHome(t *testing.T) {
	// Test case 1: Absolute path
	absolutePath := "/tmp/testfile.txt"
	expandedAbsolutePath := ExpandHome(absolutePath)
	if expandedAbsolutePath != absolutePath {
		t.Errorf("ExpandHome failed for absolute path: expected %s, got %s", absolutePath, expandedAbsolutePath)
	}

	// Test case 2: Relative path
	relativePath := "testfile.txt"
	expectedRelativePath := filepath.Join(".", relativePath)
	expandedRelativePath := ExpandHome(relativePath)
	if expandedRelativePath != expectedRelativePath {
		t.Errorf("ExpandHome failed for relative path: expected %s, got %s", expectedRelativePath, expandedRelativePath)
	}

	// Test case 3: Path starting with ~
	homeDir, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("Error getting user home directory: %v", err)
	}
	tildePath := "~/testfile.txt"
	expectedTildePath := filepath.Join(homeDir, "testfile.txt")
	expandedTildePath := ExpandHome(tildePath)
	if expandedTildePath != expectedTildePath {
		t.Errorf("ExpandHome failed for path starting with ~: expected %s, got %s", expectedTildePath, expandedTildePath)
	}
}

func TestResolvePath(t *testing.T) {
	require := require.New(t)
	require.Equal(filepath.Join("/project", "src", "assets"), ResolvePath("/project", "src/assets"))
	require.Equal("/elsewhere/assets", ResolvePath("/project", "/elsewhere/assets/"))
	require.Empty(ResolvePath("/project", ""))
}

func TestFileExists(t *testing.T) {
	require := require.New(t)
	dir := t.TempDir()
	file := filepath.Join(dir, "game.wasm")
	require.NoError(os.WriteFile(file, []byte("wasm"), 0o600))

	require.True(FileExists(file))
	require.False(FileExists(dir))
	require.False(FileExists(filepath.Join(dir, "missing")))
}

func TestGetSHA256(t *testing.T) {
	require := require.New(t)
	memFs := afero.NewMemMapFs()
	require.NoError(afero.WriteFile(memFs, "/a/game.wasm", []byte("abc"), 0o644))

	sum, err := GetSHA256(memFs, "/a/game.wasm")
	require.NoError(err)
	require.Equal("ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", sum)

	_, err = GetSHA256(memFs, "/a/missing")
	require.True(errors.Is(err, fs.ErrNotExist))
}
