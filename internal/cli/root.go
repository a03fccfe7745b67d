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

// Package cli implements the catalogctl command tree.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tomoncle/catalog"
	"github.com/tomoncle/catalog/config"
	"github.com/tomoncle/catalog/database"
)

// Version is set at build time.
var Version = "0.1.0"

// app carries what PersistentPreRunE opened to the subcommands.
type app struct {
	cfgFile string
	cfg     *config.Config
	factory *database.BaseDatabaseFactory
	catalog *catalog.Catalog
}

func (a *app) open(ctx context.Context) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	if err := cfg.ApplyLogging(); err != nil {
		return fmt.Errorf("failed to configure logging: %w", err)
	}
	factory, db, err := database.Open(ctx, &cfg.Database)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.factory = factory
	a.catalog = catalog.New(db)
	return nil
}

func (a *app) close() error {
	if a.factory == nil {
		return nil
	}
	err := a.factory.Close()
	a.factory = nil
	return err
}

// newRootCmd creates the catalogctl command tree. The returned app must be
// closed after Execute, including when a command fails.
func newRootCmd() (*cobra.Command, *app) {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "catalogctl",
		Short: "catalogctl - computer and real estate catalog maintenance",
		Long: `catalogctl manages the catalog database: it bootstraps tables,
runs seed files, maintains computers, imports real estate entries and
checks database health.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}
			return a.open(cmd.Context())
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: ./catalog.yaml)")

	rootCmd.AddCommand(newMigrateCommand(a))
	rootCmd.AddCommand(newSeedCommand(a))
	rootCmd.AddCommand(newComputersCommand(a))
	rootCmd.AddCommand(newCompaniesCommand(a))
	rootCmd.AddCommand(newRealEstateCommand(a))
	rootCmd.AddCommand(newHealthCommand(a))

	return rootCmd, a
}

// Execute runs the root command.
func Execute() error {
	rootCmd, a := newRootCmd()
	defer func() { _ = a.close() }()
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
