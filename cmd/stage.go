// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package cmd

import (
	"fmt"

	"github.com/ava-labs/stage-assets/pkg/stager"
	"github.com/ava-labs/stage-assets/pkg/ux"
	"github.com/spf13/cobra"
)

func newStager() *stager.Stager {
	return stager.New(stager.NewOSCopier(), app.Log, ux.Logger.PrintToUser)
}

func stageAssets(*cobra.Command, []string) error {
	if _, err := newStager().Stage(app.Plan()); err != nil {
		return fmt.Errorf("copying assets: %w", err)
	}
	return nil
}
