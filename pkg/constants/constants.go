// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package constants

import "time"

const (
	DefaultPerms755    = 0o755
	WriteReadReadPerms = 0o644

	ConfigFileName = ".stage-assets.yaml"
	EnvPrefix      = "STAGE_ASSETS"

	SourceAssetsDir = "src/assets"
	DistAssetsDir   = "dist/assets"
	IOSAssetsDir    = "ios/App/App/public/assets"

	DistAssetsCategory = "dist/assets"
	IOSAssetsCategory  = "iOS public assets"

	WasmPayloadFile = "game.wasm"
	WasmLoaderFile  = "wasm_exec.js"

	DefaultWatchDebounce = 500 * time.Millisecond
)

// StagedFiles is the ordered list of artifacts copied into every destination.
var StagedFiles = []string{WasmPayloadFile, WasmLoaderFile}

const (
	ConfigProjectRootKey = "project-root"
	ConfigSourceDirKey   = "source-dir"
	ConfigDistDirKey     = "dist-dir"
	ConfigIOSDirKey      = "ios-dir"
)
