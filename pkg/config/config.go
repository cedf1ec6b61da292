// Copyright (C) 2022, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/ava-labs/stage-assets/pkg/constants"
	"github.com/ava-labs/stage-assets/pkg/utils"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type Config struct {
	v *viper.Viper
}

// New returns a Config that reads STAGE_ASSETS_* environment variables.
// Keys use dashes, env vars use underscores: source-dir <-> STAGE_ASSETS_SOURCE_DIR.
func New() *Config {
	v := viper.New()
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv() // read in environment variables that match
	return &Config{v: v}
}

// SetConfig reads the config file at [s] if there is one. A missing file is
// not an error, a malformed one is.
func (c *Config) SetConfig(log logging.Logger, s string) error {
	if !utils.FileExists(s) {
		log.Info("No config file found", zap.String("config-file", s))
		return nil
	}
	ext := strings.TrimPrefix(filepath.Ext(s), ".")
	if ext == "" {
		ext = "yaml"
	}
	c.v.SetConfigType(ext)
	c.v.SetConfigFile(s)
	if err := c.v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed reading config file %s: %w", s, err)
	}
	log.Info("Using config file", zap.String("config-file", s))
	return nil
}

// BindFlag makes an explicitly set [flag] take precedence over env and file values for [key].
func (c *Config) BindFlag(key string, flag *pflag.Flag) error {
	return c.v.BindPFlag(key, flag)
}

// SetConfigValue sets the value of a configuration key for this run.
func (c *Config) SetConfigValue(key string, value interface{}) {
	c.v.Set(key, value)
}

func (c *Config) GetConfigStringValue(key string) string {
	return c.v.GetString(key)
}
