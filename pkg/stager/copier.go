// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package stager

import (
	"fmt"
	"io"
	"os"

	"github.com/ava-labs/stage-assets/pkg/constants"
	dircopy "github.com/otiai10/copy"
	"github.com/spf13/afero"
)

// Copier performs the filesystem side effects of a staging run.
type Copier interface {
	// EnsureDir creates [dir] and any missing parents. Existing directories are not an error.
	EnsureDir(dir string) error
	// CopyFile copies [src] to [dst], replacing whatever is at [dst].
	CopyFile(src string, dst string) error
}

type osCopier struct{}

// NewOSCopier returns a Copier working on the local disk. Copies are
// synced before returning and symlinked sources are dereferenced.
func NewOSCopier() Copier {
	return osCopier{}
}

func (osCopier) EnsureDir(dir string) error {
	return os.MkdirAll(dir, constants.DefaultPerms755)
}

func (osCopier) CopyFile(src string, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", src)
	}
	return dircopy.Copy(src, dst, dircopy.Options{
		OnSymlink: func(string) dircopy.SymlinkAction {
			return dircopy.Deep
		},
		Sync: true,
	})
}

type fsCopier struct {
	fs afero.Fs
}

// NewFsCopier returns a Copier on top of an afero filesystem.
func NewFsCopier(fs afero.Fs) Copier {
	return fsCopier{fs: fs}
}

func (c fsCopier) EnsureDir(dir string) error {
	return c.fs.MkdirAll(dir, constants.DefaultPerms755)
}

func (c fsCopier) CopyFile(src string, dst string) error {
	in, err := c.fs.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	info, err := in.Stat()
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", src)
	}
	out, err := c.fs.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, constants.WriteReadReadPerms)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
