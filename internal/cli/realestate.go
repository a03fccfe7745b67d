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
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tomoncle/catalog/database"
	"github.com/tomoncle/catalog/models"
	"github.com/uptrace/bun"
	"gopkg.in/yaml.v3"
)

// realEstateFile is the layout read by "realestate import".
type realEstateFile struct {
	RealEstate []models.RealEstate `yaml:"real_estate"`
}

func loadRealEstateFile(path string) ([]models.RealEstate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	var f realEstateFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return f.RealEstate, nil
}

func newRealEstateCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "realestate",
		Aliases: []string{"re"},
		Short:   "List and import real estate entries",
	}
	cmd.AddCommand(newRealEstateListCommand(a))
	cmd.AddCommand(newRealEstateImportCommand(a))
	return cmd
}

func newRealEstateListCommand(a *app) *cobra.Command {
	var flags pageFlags
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List real estate entries",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.catalog.Do(cmd.Context(), func(ctx context.Context, conn bun.IDB) error {
				page, err := a.catalog.RealEstate.Page(ctx, conn, flags.request())
				if err != nil {
					return err
				}
				renderRealEstate(cmd.OutOrStdout(), page)
				return nil
			})
		},
	}
	flags.register(cmd)
	return cmd
}

func newRealEstateImportCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.yaml>",
		Short: "Insert or overwrite real estate entries from a YAML file",
		Long: `Insert or overwrite real estate entries from a YAML file of the form

real_estate:
  - id: re-001
    name: Harbor View
    street: 1 Pier Rd
    city: Portland
    state: ME
    country: US
    zip: "04101"

Every entry needs an id; existing entries with the same id are overwritten.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := loadRealEstateFile(args[0])
			if err != nil {
				return err
			}
			batch := make([]*models.RealEstate, len(entries))
			for i := range entries {
				batch[i] = &entries[i]
			}
			err = a.catalog.Do(cmd.Context(), func(ctx context.Context, conn bun.IDB) error {
				return a.catalog.RealEstate.Upsert(ctx, conn, models.RealEstateUpdatableColumns, batch...)
			})
			if err != nil {
				if ok, kind := database.IsSqlError(err); ok {
					return fmt.Errorf("import failed (%s): %w", kind, err)
				}
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Imported %d real estate entries\n", len(batch))
			return nil
		},
	}
}
