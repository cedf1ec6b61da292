// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package stager

import (
	"fmt"

	"github.com/ava-labs/avalanchego/utils/logging"
	"go.uber.org/zap"
)

const SuccessMessage = "Assets copied successfully"

// Report lists the pairs copied by a Stage call, in copy order. On failure
// it holds the pairs completed before the failing one.
type Report struct {
	Copied []Pair
}

type Stager struct {
	copier    Copier
	log       logging.Logger
	printFunc func(msg string, args ...interface{})
}

// New returns a Stager that copies through [copier], prints progress with
// [printFunc] and records details to [log].
func New(copier Copier, log logging.Logger, printFunc func(msg string, args ...interface{})) *Stager {
	return &Stager{
		copier:    copier,
		log:       log,
		printFunc: printFunc,
	}
}

// Stage creates every destination directory and then copies every file of
// [plan] into every destination. The first error aborts the run.
func (s *Stager) Stage(plan Plan) (*Report, error) {
	report := &Report{}
	if err := plan.Validate(); err != nil {
		return report, err
	}
	for _, dest := range plan.Destinations {
		if err := s.copier.EnsureDir(dest.Dir); err != nil {
			return report, fmt.Errorf("failed creating %s directory %s: %w", dest.Category, dest.Dir, err)
		}
		s.log.Debug("ensured destination directory",
			zap.String("category", dest.Category),
			zap.String("dir", dest.Dir),
		)
	}
	for _, pair := range plan.Pairs() {
		if err := s.copier.CopyFile(pair.Source, pair.Target); err != nil {
			return report, fmt.Errorf("failed copying %s to %s: %w", pair.File, pair.Destination.Category, err)
		}
		report.Copied = append(report.Copied, pair)
		s.log.Debug("copied file",
			zap.String("source", pair.Source),
			zap.String("target", pair.Target),
		)
		s.printFunc("Copied %s to %s", pair.File, pair.Destination.Category)
	}
	s.printFunc(SuccessMessage)
	return report, nil
}
