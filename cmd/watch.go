// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package cmd

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ava-labs/stage-assets/pkg/cobrautils"
	"github.com/ava-labs/stage-assets/pkg/constants"
	"github.com/ava-labs/stage-assets/pkg/ux"
	"github.com/ava-labs/stage-assets/pkg/watcher"
	"github.com/spf13/cobra"
)

var watchDebounce time.Duration

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Stage assets and restage them whenever they change",
		Long: `The watch command stages the assets once and then keeps watching the source
directory, staging again whenever game.wasm or wasm_exec.js is rewritten.
The source directory is created if it does not exist yet, so watch can start
before the first build. Only the source directory itself is watched: rewriting
the target of a symlinked asset does not trigger a restage.
Failed runs are reported and watching continues. Stop it with Ctrl-C.`,
		RunE: watchAssets,
		Args: cobrautils.ExactArgs(0),
	}
	cmd.Flags().DurationVar(&watchDebounce, "debounce", constants.DefaultWatchDebounce, "quiet period before restaging")
	return cmd
}

func watchAssets(cmd *cobra.Command, _ []string) error {
	plan := app.Plan()
	s := newStager()
	restage := func() error {
		_, err := s.Stage(plan)
		if err != nil {
			ux.Logger.PrintErrToUser("Error: copying assets: %s", err)
		}
		return err
	}
	_ = restage()

	w, err := watcher.New(plan.SourceDir, plan.Files, watchDebounce, app.Log)
	if err != nil {
		return err
	}
	defer w.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ux.Logger.PrintToUser("Watching %s for changes", plan.SourceDir)
	return w.Run(ctx, restage)
}
