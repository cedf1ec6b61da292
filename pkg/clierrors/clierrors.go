// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package clierrors

import "errors"

var (
	ErrInvalidPlan         = errors.New("invalid staging plan")
	ErrStagedFileMismatch  = errors.New("staged files do not match their sources, run 'stage-assets' again")
	ErrUnknownOutputFormat = errors.New("unknown output format")
)
