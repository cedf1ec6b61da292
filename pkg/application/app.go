// Copyright (C) 2022, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package application

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/ava-labs/stage-assets/pkg/config"
	"github.com/ava-labs/stage-assets/pkg/constants"
	"github.com/ava-labs/stage-assets/pkg/stager"
	"github.com/ava-labs/stage-assets/pkg/utils"
	"github.com/kardianos/osext"
)

type StageApp struct {
	Log         logging.Logger
	projectRoot string
	Conf        *config.Config
}

func New() *StageApp {
	return &StageApp{}
}

func (app *StageApp) Setup(projectRoot string, log logging.Logger, conf *config.Config) {
	app.projectRoot = projectRoot
	app.Log = log
	app.Conf = conf
}

// DefaultProjectRoot is the parent of the folder holding the running
// executable, as the stager ships in <project>/scripts.
func DefaultProjectRoot() (string, error) {
	folderPath, err := osext.ExecutableFolder()
	if err != nil {
		return "", fmt.Errorf("failed locating the executable folder: %w", err)
	}
	return filepath.Dir(folderPath), nil
}

func (app *StageApp) GetProjectRoot() string {
	return app.projectRoot
}

func (app *StageApp) GetConfigFile() string {
	return filepath.Join(app.projectRoot, constants.ConfigFileName)
}

func (app *StageApp) GetSourceDir() string {
	return app.resolveDir(constants.ConfigSourceDirKey, constants.SourceAssetsDir)
}

func (app *StageApp) GetDistAssetsDir() string {
	return app.resolveDir(constants.ConfigDistDirKey, constants.DistAssetsDir)
}

func (app *StageApp) GetIOSAssetsDir() string {
	return app.resolveDir(constants.ConfigIOSDirKey, constants.IOSAssetsDir)
}

func (app *StageApp) resolveDir(key string, defaultDir string) string {
	dir := defaultDir
	if app.Conf != nil {
		if configured := strings.TrimSpace(app.Conf.GetConfigStringValue(key)); configured != "" {
			dir = configured
		}
	}
	return utils.ResolvePath(app.projectRoot, dir)
}

// Plan returns the staging plan of the project: the wasm payload and its
// loader, copied from the source assets into the web and iOS asset folders.
func (app *StageApp) Plan() stager.Plan {
	return stager.Plan{
		SourceDir: app.GetSourceDir(),
		Destinations: []stager.Destination{
			{Category: constants.DistAssetsCategory, Dir: app.GetDistAssetsDir()},
			{Category: constants.IOSAssetsCategory, Dir: app.GetIOSAssetsDir()},
		},
		Files: append([]string{}, constants.StagedFiles...),
	}
}
