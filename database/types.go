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

package database

import (
	"context"
	"time"

	"github.com/uptrace/bun"
)

// Supported values of ConnectionConfig.Type.
const (
	TypeMySQL    = "mysql"
	TypePostgres = "postgres"
	TypePgx      = "pgx"
	TypeSQLite   = "sqlite"
)

// SupportedTypes lists the accepted database types.
var SupportedTypes = []string{TypeMySQL, TypePostgres, TypePgx, TypeSQLite}

// AbstractDatabaseManager defines the operations for managing a database
// connection, bootstrapping tables and seed data, and reporting health.
type AbstractDatabaseManager interface {
	Connect(ctx context.Context) error
	Disconnect() error
	Reconnect(ctx context.Context) error
	HealthCheck(ctx context.Context) *HealthStatus
	GetDB() *bun.DB
	RunMigrations(ctx context.Context, opts MigrationOptions) error
	InitData(ctx context.Context, opts DataInitConfig) error
	GetStats() *DBStats
	SetLogger(logger Logger)
}

// HealthStatus holds the result of a health check against the database.
type HealthStatus struct {
	Healthy       bool          `json:"healthy"`
	Connected     bool          `json:"connected"`
	ResponseTime  time.Duration `json:"response_time"`
	ActiveConns   int           `json:"active_conns"`
	IdleConns     int           `json:"idle_conns"`
	MaxOpenConns  int           `json:"max_open_conns"`
	LastError     string        `json:"last_error,omitempty"`
	LastCheckTime time.Time     `json:"last_check_time"`
}

// DBStats mirrors database/sql stats returned by the manager.
type DBStats struct {
	MaxOpenConns      int           `json:"max_open_conns"`
	OpenConns         int           `json:"open_conns"`
	InUse             int           `json:"in_use"`
	Idle              int           `json:"idle"`
	WaitCount         int64         `json:"wait_count"`
	WaitDuration      time.Duration `json:"wait_duration"`
	MaxIdleClosed     int64         `json:"max_idle_closed"`
	MaxIdleTimeClosed int64         `json:"max_idle_time_closed"`
	MaxLifetimeClosed int64         `json:"max_lifetime_closed"`
}

// ConnectionConfig describes how to connect to a database and tune its pool.
type ConnectionConfig struct {
	Type              string        `json:"type"` // mysql, postgres, pgx, sqlite
	Host              string        `json:"host"`
	Port              int           `json:"port"`
	Username          string        `json:"username"`
	Password          string        `json:"password"`
	DBName            string        `json:"dbname"` // sqlite: file stem, ":memory:" or a "file:" URI
	SSLMode           string        `json:"sslmode"`
	MaxIdleConns      int           `json:"max_idle_conns"`
	MaxOpenConns      int           `json:"max_open_conns"`
	ConnMaxLifetime   time.Duration `json:"conn_max_lifetime"`
	ConnMaxIdleTime   time.Duration `json:"conn_max_idle_time"`
	ConnectTimeout    time.Duration `json:"connect_timeout"`
	ReadTimeout       time.Duration `json:"read_timeout"`
	WriteTimeout      time.Duration `json:"write_timeout"`
	MaxReconnectTries int           `json:"max_reconnect_tries"`
	ReconnectInterval time.Duration `json:"reconnect_interval"`
	EnableQueryLog    bool          `json:"enable_query_log"`
	QueryLogFormat    string        `json:"query_log_format"` // bundebug (default) or color
	SlowQueryTime     time.Duration `json:"slow_query_time"`
}

// DataMigrateConfig controls table bootstrap on startup.
type DataMigrateConfig struct {
	EnableMigrateOnStartup bool   `json:"enable_migrate_on_startup"`
	EnableForeignKey       bool   `json:"enable_foreign_key"`
	ForeignKeyFile         string `json:"foreign_key_file"`
}

// DataInitConfig controls data seeding behavior and environment selection.
type DataInitConfig struct {
	AutoInitOnStartup   bool   `json:"auto_init_on_startup"`
	AutoInitOnMigration bool   `json:"auto_init_on_migration"`
	Filepath            string `json:"filepath"`
	Environment         string `json:"environment"`
}

// Config aggregates connection, migration, and data initialization settings.
type Config struct {
	ConnectionConfig  ConnectionConfig  `json:"connection_config"`
	DataMigrateConfig DataMigrateConfig `json:"data_migrate_config"`
	DataInitConfig    DataInitConfig    `json:"data_init_config"`
}

// MigrationOptions returns the options RunMigrations needs from the config.
func (c *Config) MigrationOptions() MigrationOptions {
	return MigrationOptions{
		EnableForeignKey: c.DataMigrateConfig.EnableForeignKey,
		ForeignKeyFile:   c.DataMigrateConfig.ForeignKeyFile,
		SeedOnMigration:  c.DataInitConfig.AutoInitOnMigration,
		DataInit:         c.DataInitConfig,
	}
}

// DefaultConnectionConfig returns a connection config with sensible defaults.
func DefaultConnectionConfig() *ConnectionConfig {
	return &ConnectionConfig{
		Type:              TypeSQLite,
		DBName:            "catalog",
		MaxIdleConns:      10,
		MaxOpenConns:      100,
		ConnMaxLifetime:   time.Hour,
		ConnMaxIdleTime:   time.Minute * 30,
		ConnectTimeout:    time.Second * 10,
		ReadTimeout:       time.Second * 30,
		WriteTimeout:      time.Second * 30,
		MaxReconnectTries: 3,
		ReconnectInterval: time.Second * 5,
		SlowQueryTime:     time.Second * 2,
	}
}

// DefaultConfig returns a Config built on DefaultConnectionConfig.
func DefaultConfig() *Config {
	return &Config{
		ConnectionConfig: *DefaultConnectionConfig(),
		DataInitConfig: DataInitConfig{
			Filepath:    "configs/sql",
			Environment: "prod",
		},
	}
}
