// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package cmd

import (
	"fmt"

	"github.com/ava-labs/stage-assets/pkg/clierrors"
	"github.com/ava-labs/stage-assets/pkg/cobrautils"
	"github.com/ava-labs/stage-assets/pkg/stager"
	"github.com/ava-labs/stage-assets/pkg/ux"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check that staged assets match their sources",
		Long: `The verify command compares the sha256 of every source asset with each of its
staged copies and fails if any copy is missing or out of date.`,
		RunE: verifyAssets,
		Args: cobrautils.ExactArgs(0),
	}
}

func verifyAssets(*cobra.Command, []string) error {
	checks, err := stager.Verify(afero.NewOsFs(), app.Plan())
	if err != nil {
		return fmt.Errorf("verifying staged assets: %w", err)
	}
	failed := 0
	for _, check := range checks {
		if check.Status == stager.StatusMatch {
			ux.Logger.GreenCheckmarkToUser("%s in %s", check.File, check.Destination.Category)
			continue
		}
		failed++
		ux.Logger.RedXToUser("%s in %s is %s", check.File, check.Destination.Category, check.Status)
	}
	if failed > 0 {
		return fmt.Errorf("%w (%d of %d copies)", clierrors.ErrStagedFileMismatch, failed, len(checks))
	}
	return nil
}
