// Copyright (C) 2022, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package cmd

const (
	BaseDirName = ".stage-assets"
	logDirName  = "logs"
	logName     = "stage-assets"

	maxLogFileSize   = 4
	maxNumOfLogFiles = 5
	retainOldFiles   = 0 // retain all old log files

	projectRootFlag = "project-root"
	configFlag      = "config"
	logLevelFlag    = "log-level"
	logDirFlag      = "log-dir"

	tableFormat = "table"
	yamlFormat  = "yaml"
)
