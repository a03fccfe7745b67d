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

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newMigrateCommand(a *app) *cobra.Command {
	var foreignKeys bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create missing tables and record applied migrations",
		Example: `  catalogctl migrate
  catalogctl migrate --foreign-keys`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := a.cfg.Database.MigrationOptions()
			if cmd.Flags().Changed("foreign-keys") {
				opts.EnableForeignKey = foreignKeys
			}
			if err := a.factory.GetManager().RunMigrations(cmd.Context(), opts); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Migrations applied")
			return nil
		},
	}
	cmd.Flags().BoolVar(&foreignKeys, "foreign-keys", false, "add foreign key constraints")
	return cmd
}

func newSeedCommand(a *app) *cobra.Command {
	var env string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Run the SQL seed files",
		Long: `Run common/*.sql and then environments/<env>/*.sql below the configured
seed directory, in numeric file-name order, one transaction per file.`,
		Example: `  catalogctl seed --env dev`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := a.cfg.Database.DataInitConfig
			if env != "" {
				opts.Environment = env
			}
			if err := a.factory.GetManager().InitData(cmd.Context(), opts); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Seed files from %s applied\n", opts.Filepath)
			return nil
		},
	}
	cmd.Flags().StringVar(&env, "env", "", "seed environment (default: configured environment)")
	return cmd
}
