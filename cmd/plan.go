// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package cmd

import (
	"fmt"
	"os"

	"github.com/ava-labs/stage-assets/pkg/clierrors"
	"github.com/ava-labs/stage-assets/pkg/cobrautils"
	"github.com/ava-labs/stage-assets/pkg/stager"
	"github.com/ava-labs/stage-assets/pkg/ux"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var planFormat string

func newPlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show what would be staged without copying",
		Long: `The plan command prints the resolved source and destination directories and
the files that a staging run copies. Nothing is written.`,
		RunE: printPlan,
		Args: cobrautils.ExactArgs(0),
	}
	cmd.Flags().StringVar(&planFormat, "format", tableFormat, "output format, one of [table, yaml]")
	return cmd
}

func printPlan(*cobra.Command, []string) error {
	plan := app.Plan()
	switch planFormat {
	case tableFormat:
		ux.Logger.PrintTable(planTable(plan))
		return nil
	case yamlFormat:
		out, err := yaml.Marshal(plan)
		if err != nil {
			return err
		}
		ux.Logger.PrintToUser("%s", string(out))
		return nil
	default:
		return fmt.Errorf("%w %q, expected %s or %s", clierrors.ErrUnknownOutputFormat, planFormat, tableFormat, yamlFormat)
	}
}

func planTable(plan stager.Plan) table.Writer {
	t := ux.DefaultTable("Staging Plan", table.Row{"Category", "File", "Destination", "Size (bytes)"})
	for _, pair := range plan.Pairs() {
		size := "missing"
		if info, err := os.Stat(pair.Source); err == nil {
			size = ux.ConvertToStringWithThousandSeparator(uint64(info.Size()))
		}
		t.AppendRow(table.Row{pair.Destination.Category, pair.File, pair.Target, size})
	}
	t.SetCaption(fmt.Sprintf("source: %s", plan.SourceDir))
	return t
}
