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
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tomoncle/catalog/database"
)

const sampleConfig = `
database:
  connection_config:
    type: pgx
    host: db.internal
    port: 5432
    dbname: computers
    slow_query_time: 500ms
  data_migrate_config:
    enable_migrate_on_startup: true
    enable_foreign_key: true
log:
  level: debug
  format: json
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_FileOverDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	conn := cfg.Database.ConnectionConfig
	assert.Equal(t, database.TypePgx, conn.Type)
	assert.Equal(t, "db.internal", conn.Host)
	assert.Equal(t, 5432, conn.Port)
	assert.Equal(t, "computers", conn.DBName)
	assert.Equal(t, 500*time.Millisecond, conn.SlowQueryTime)
	assert.True(t, cfg.Database.DataMigrateConfig.EnableMigrateOnStartup)
	assert.True(t, cfg.Database.DataMigrateConfig.EnableForeignKey)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)

	// untouched keys keep their defaults
	assert.Equal(t, 100, conn.MaxOpenConns)
	assert.Equal(t, time.Hour, conn.ConnMaxLifetime)
	assert.Equal(t, "configs/sql", cfg.Database.DataInitConfig.Filepath)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("CATALOG_DATABASE__CONNECTION_CONFIG__DBNAME", "inventory")
	t.Setenv("CATALOG_DATABASE__CONNECTION_CONFIG__MAX_OPEN_CONNS", "7")
	t.Setenv("CATALOG_LOG__LEVEL", "warn")

	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)
	assert.Equal(t, "inventory", cfg.Database.ConnectionConfig.DBName)
	assert.Equal(t, 7, cfg.Database.ConnectionConfig.MaxOpenConns)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "db.internal", cfg.Database.ConnectionConfig.Host)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
