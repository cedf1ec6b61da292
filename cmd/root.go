// Copyright (C) 2022, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/ava-labs/avalanchego/utils/perms"
	"github.com/ava-labs/stage-assets/pkg/application"
	"github.com/ava-labs/stage-assets/pkg/cobrautils"
	"github.com/ava-labs/stage-assets/pkg/config"
	"github.com/ava-labs/stage-assets/pkg/constants"
	"github.com/ava-labs/stage-assets/pkg/utils"
	"github.com/ava-labs/stage-assets/pkg/ux"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	app *application.StageApp

	projectRoot string
	configFile  string
	logLevel    string
	logDir      string

	logFactory logging.Factory

	Version = ""
)

func NewRootCmd() *cobra.Command {
	app = application.New()

	rootCmd := &cobra.Command{
		Use:   "stage-assets",
		Short: "Copy the wasm build into the web and iOS asset folders",
		Long: `stage-assets copies the compiled game.wasm and its wasm_exec.js loader from
src/assets into dist/assets and ios/App/App/public/assets, creating those
directories when needed and overwriting previous copies.

Paths are relative to the project root, which defaults to the parent of the
folder holding this executable.`,
		Args:              cobrautils.ExactArgs(0),
		PersistentPreRunE: setup,
		RunE:              stageAssets,
		SilenceErrors:     true,
		SilenceUsage:      true,
		Version:           Version,
	}

	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&projectRoot, projectRootFlag, "", "project root the asset paths are relative to")
	rootCmd.PersistentFlags().StringVar(&configFile, configFlag, "", "config file, relative to the project root (default "+constants.ConfigFileName+")")
	rootCmd.PersistentFlags().StringVar(&logLevel, logLevelFlag, "OFF", "log level displayed on the console")
	rootCmd.PersistentFlags().StringVar(&logDir, logDirFlag, utils.UserHomePath(BaseDirName, logDirName), "directory for log files")

	rootCmd.AddCommand(newVerifyCmd())
	rootCmd.AddCommand(newPlanCmd())
	rootCmd.AddCommand(newWatchCmd())

	cobrautils.ConfigureRootCmd(rootCmd)
	return rootCmd
}

func setup(cmd *cobra.Command, _ []string) error {
	log, err := setupLogging()
	if err != nil {
		return err
	}
	// create the user facing logger as a global var
	ux.NewUserLog(log, cmd.OutOrStdout())
	ux.Logger.ErrWriter = cmd.ErrOrStderr()

	conf := config.New()
	if err := conf.BindFlag(constants.ConfigProjectRootKey, cmd.Root().PersistentFlags().Lookup(projectRootFlag)); err != nil {
		return err
	}
	root := conf.GetConfigStringValue(constants.ConfigProjectRootKey)
	if root == "" {
		root, err = application.DefaultProjectRoot()
		if err != nil {
			return err
		}
	}
	root, err = filepath.Abs(utils.ExpandHome(root))
	if err != nil {
		return fmt.Errorf("invalid project root %s: %w", root, err)
	}
	app.Setup(root, log, conf)

	if configFile == "" {
		configFile = app.GetConfigFile()
	}
	if err := conf.SetConfig(log, utils.ResolvePath(root, configFile)); err != nil {
		return err
	}
	log.Info("resolved project", zap.String("project-root", root), zap.String("source", app.GetSourceDir()))
	return nil
}

func setupLogging() (logging.Logger, error) {
	var err error
	closeLogs()

	logConfig := logging.Config{}
	logConfig.LogLevel = logging.Info
	logConfig.DisplayLevel, err = logging.ToLevel(logLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level configured: %s", logLevel)
	}
	logConfig.Directory = utils.ExpandHome(logDir)
	if err := os.MkdirAll(logConfig.Directory, perms.ReadWriteExecute); err != nil {
		return nil, fmt.Errorf("failed creating log directory: %w", err)
	}

	// some logging config params
	logConfig.LogFormat = logging.Plain
	logConfig.MaxSize = maxLogFileSize
	logConfig.MaxFiles = maxNumOfLogFiles
	logConfig.MaxAge = retainOldFiles

	logFactory = logging.NewFactory(logConfig)
	log, err := logFactory.Make(logName)
	if err != nil {
		logFactory.Close()
		logFactory = nil
		return nil, fmt.Errorf("failed setting up logging, exiting: %w", err)
	}
	return log, nil
}

func closeLogs() {
	if logFactory != nil {
		logFactory.Close()
		logFactory = nil
	}
}

// Execute builds the command tree and runs it, exiting with status 1 on error.
// This is called by main.main().
func Execute() {
	err := NewRootCmd().Execute()
	closeLogs()
	cobrautils.HandleErrors(err)
}
