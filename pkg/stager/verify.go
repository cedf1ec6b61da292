// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package stager

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/ava-labs/stage-assets/pkg/utils"
	"github.com/spf13/afero"
)

type Status string

const (
	StatusMatch   Status = "match"
	StatusMissing Status = "missing"
	StatusDiffers Status = "differs"
)

// Check is the verification result of one staged copy.
type Check struct {
	Pair
	Status Status
}

// Verify compares the sha256 of every source file of [plan] with each of its
// staged copies on [fsys]. A missing source file is an error, a missing or
// different copy is reported as a Check.
func Verify(fsys afero.Fs, plan Plan) ([]Check, error) {
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	sourceSums := map[string]string{}
	for _, file := range plan.Files {
		sum, err := utils.GetSHA256(fsys, filepath.Join(plan.SourceDir, file))
		if err != nil {
			return nil, fmt.Errorf("failed hashing source %s: %w", file, err)
		}
		sourceSums[file] = sum
	}
	checks := make([]Check, 0, len(plan.Destinations)*len(plan.Files))
	for _, pair := range plan.Pairs() {
		check := Check{Pair: pair, Status: StatusMatch}
		sum, err := utils.GetSHA256(fsys, pair.Target)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			check.Status = StatusMissing
		case err != nil:
			return nil, err
		case sum != sourceSums[pair.File]:
			check.Status = StatusDiffers
		}
		checks = append(checks, check)
	}
	return checks, nil
}
