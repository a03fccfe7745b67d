/*
 * Copyright 2025 tomoncle.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/tomoncle/catalog/database"
	"github.com/tomoncle/catalog/utils"
)

const (
	// EnvPrefix marks environment overrides. Nested keys are joined with a
	// double underscore: CATALOG_DATABASE__CONNECTION_CONFIG__TYPE=pgx.
	EnvPrefix = "CATALOG_"

	FileName    = "catalog.yaml"
	FileNameAlt = "catalog.yml"
)

// Config is the application configuration.
type Config struct {
	Database database.Config `json:"database"`
	Log      LogConfig       `json:"log"`
}

type LogConfig struct {
	Level  string `json:"level"`
	Format string `json:"format"` // text or json
	File   string `json:"file"`
}

// Default returns the configuration used when no file or environment
// override is present.
func Default() *Config {
	return &Config{
		Database: *database.DefaultConfig(),
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load layers the YAML file at path and then CATALOG_ environment variables
// over Default. An empty path looks for catalog.yaml or catalog.yml in the
// working directory and silently skips the file when neither exists.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path == "" {
		path = findConfigFile()
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	cfg := Default()
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	return cfg, nil
}

func findConfigFile() string {
	for _, name := range []string{FileName, FileNameAlt} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// ApplyLogging pushes the log settings to every utils logger.
func (c *Config) ApplyLogging() error {
	utils.ConfigureLogLevel(c.Log.Level)
	utils.ConfigureLogFormat(c.Log.Format)
	if c.Log.File != "" {
		return utils.ConfigureOutput(os.Stdout, c.Log.File)
	}
	return nil
}
