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
	"fmt"

	"github.com/uptrace/bun"
)

// Open creates a factory for cfg, connects, and runs migrations and seeding
// according to the config flags. The caller owns the returned factory and
// closes it; nothing is kept at package level.
func Open(ctx context.Context, cfg *Config) (*BaseDatabaseFactory, *bun.DB, error) {
	if cfg == nil {
		return nil, nil, fmt.Errorf("database configuration cannot be empty")
	}
	factory := NewDatabaseFactory()
	manager, err := factory.CreateFromConfig(&cfg.ConnectionConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create database manager: %w", err)
	}
	if err := factory.InitializeDatabase(ctx, cfg.DataMigrateConfig.EnableMigrateOnStartup, cfg.MigrationOptions()); err != nil {
		_ = factory.Close()
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	if cfg.DataInitConfig.AutoInitOnStartup {
		if err := manager.InitData(ctx, cfg.DataInitConfig); err != nil {
			_ = factory.Close()
			return nil, nil, fmt.Errorf("failed to initialize data: %w", err)
		}
	}
	db := manager.GetDB()
	db.RegisterModel(RegisteredModelInstances()...)
	return factory, db, nil
}

// WithConn runs fn on a dedicated connection taken from db's pool and
// returns it to the pool on every exit path, panics included.
func WithConn(ctx context.Context, db *bun.DB, fn func(ctx context.Context, conn bun.IDB) error) error {
	conn, err := db.Conn(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()
	return fn(ctx, conn)
}
