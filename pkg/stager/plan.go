// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package stager

import (
	"fmt"
	"path/filepath"

	"github.com/ava-labs/stage-assets/pkg/clierrors"
)

// Destination is a directory that receives a copy of every staged file.
type Destination struct {
	// Category names the destination in user facing messages
	Category string `yaml:"category"`
	Dir      string `yaml:"dir"`
}

// Plan describes a staging run: which files are copied from where to where.
type Plan struct {
	SourceDir    string        `yaml:"source"`
	Destinations []Destination `yaml:"destinations"`
	Files        []string      `yaml:"files"`
}

// Pair is a single (file, destination) copy of a plan.
type Pair struct {
	File        string
	Source      string
	Destination Destination
	Target      string
}

func (p Plan) Validate() error {
	if p.SourceDir == "" {
		return fmt.Errorf("%w: empty source directory", clierrors.ErrInvalidPlan)
	}
	if len(p.Destinations) == 0 {
		return fmt.Errorf("%w: no destinations", clierrors.ErrInvalidPlan)
	}
	for _, dest := range p.Destinations {
		if dest.Dir == "" {
			return fmt.Errorf("%w: empty directory for destination %q", clierrors.ErrInvalidPlan, dest.Category)
		}
	}
	for _, file := range p.Files {
		if !filepath.IsLocal(file) {
			return fmt.Errorf("%w: file name %q must be relative to the source directory", clierrors.ErrInvalidPlan, file)
		}
	}
	return nil
}

// Pairs expands the plan in copy order: destinations outer, files inner.
func (p Plan) Pairs() []Pair {
	pairs := make([]Pair, 0, len(p.Destinations)*len(p.Files))
	for _, dest := range p.Destinations {
		for _, file := range p.Files {
			pairs = append(pairs, Pair{
				File:        file,
				Source:      filepath.Join(p.SourceDir, file),
				Destination: dest,
				Target:      filepath.Join(dest.Dir, file),
			})
		}
	}
	return pairs
}
