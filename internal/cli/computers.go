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
	"strconv"

	"github.com/spf13/cobra"
	"github.com/tomoncle/catalog/models"
	"github.com/tomoncle/catalog/types"
	"github.com/uptrace/bun"
)

// pageFlags are shared by every paginated listing.
type pageFlags struct {
	page   int
	size   int
	filter string
}

func (f *pageFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&f.page, "page", "p", types.DefaultPage, "zero-based page index")
	cmd.Flags().IntVarP(&f.size, "size", "s", types.DefaultPageSize, "page size")
	cmd.Flags().StringVarP(&f.filter, "filter", "f", "", "name filter, substring or LIKE pattern")
}

func (f *pageFlags) request() *types.PageRequest {
	return types.NewPageRequest(
		types.WithPage(f.page),
		types.WithPageSize(f.size),
		types.WithFilter(f.filter),
	)
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: %w", s, err)
	}
	return id, nil
}

func newComputersCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "computers",
		Aliases: []string{"computer"},
		Short:   "List, show, add, update and delete computers",
	}
	cmd.AddCommand(newComputersListCommand(a))
	cmd.AddCommand(newComputersShowCommand(a))
	cmd.AddCommand(newComputersAddCommand(a))
	cmd.AddCommand(newComputersUpdateCommand(a))
	cmd.AddCommand(newComputersDeleteCommand(a))
	return cmd
}

func newComputersListCommand(a *app) *cobra.Command {
	var flags pageFlags
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List computers with their company",
		Example: `  catalogctl computers list --filter mac --page 1 --size 20`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.catalog.Do(cmd.Context(), func(ctx context.Context, conn bun.IDB) error {
				page, err := a.catalog.Computers.List(ctx, conn, flags.request())
				if err != nil {
					return err
				}
				renderComputers(cmd.OutOrStdout(), page)
				return nil
			})
		},
	}
	flags.register(cmd)
	return cmd
}

func newComputersShowCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one computer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return a.catalog.Do(cmd.Context(), func(ctx context.Context, conn bun.IDB) error {
				computer, err := a.catalog.Computers.FindByID(ctx, conn, id)
				if err != nil {
					return err
				}
				if computer == nil {
					return fmt.Errorf("computer %d not found", id)
				}
				renderComputer(cmd.OutOrStdout(), computer)
				return nil
			})
		},
	}
}

// computerFlags are the optional fields of add and update. Only flags set on
// the command line are applied to the record.
type computerFlags struct {
	introduced   string
	discontinued string
	companyID    int64
}

func (f *computerFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.introduced, "introduced", "", "introduction date (yyyy-MM-dd)")
	cmd.Flags().StringVar(&f.discontinued, "discontinued", "", "discontinuation date (yyyy-MM-dd)")
	cmd.Flags().Int64Var(&f.companyID, "company", 0, "company id")
}

func (f *computerFlags) apply(cmd *cobra.Command, computer *models.Computer) error {
	var err error
	if cmd.Flags().Changed("introduced") {
		if computer.Introduced, err = parseOptionalDate(f.introduced); err != nil {
			return fmt.Errorf("invalid --introduced: %w", err)
		}
	}
	if cmd.Flags().Changed("discontinued") {
		if computer.Discontinued, err = parseOptionalDate(f.discontinued); err != nil {
			return fmt.Errorf("invalid --discontinued: %w", err)
		}
	}
	if cmd.Flags().Changed("company") {
		companyID := f.companyID
		computer.CompanyID = &companyID
	}
	return nil
}

// parseOptionalDate maps an empty value to a cleared date.
func parseOptionalDate(s string) (*types.Timestamp, error) {
	if s == "" {
		return nil, nil
	}
	return types.ParseDate(s)
}

func newComputersAddCommand(a *app) *cobra.Command {
	var flags computerFlags
	cmd := &cobra.Command{
		Use:     "add <name>",
		Short:   "Add a computer",
		Args:    cobra.ExactArgs(1),
		Example: `  catalogctl computers add "MacBook Pro" --introduced 2006-01-10 --company 1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			computer := &models.Computer{Name: args[0]}
			if err := flags.apply(cmd, computer); err != nil {
				return err
			}
			return a.catalog.Do(cmd.Context(), func(ctx context.Context, conn bun.IDB) error {
				id, err := a.catalog.Computers.Insert(ctx, conn, computer)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Computer %s has been created with id %d\n", computer.Name, id)
				return nil
			})
		},
	}
	flags.register(cmd)
	return cmd
}

func newComputersUpdateCommand(a *app) *cobra.Command {
	var flags computerFlags
	cmd := &cobra.Command{
		Use:   "update <id> <name>",
		Short: "Rename a computer and change its dates or company",
		Long: `Replace the stored computer with the given name. Fields whose flag is not
set keep their stored value; an empty date flag clears the date.`,
		Args: cobra.ExactArgs(2),
		Example: `  catalogctl computers update 6 "MacBook Pro 15" --discontinued 2012-06-11
  catalogctl computers update 6 "MacBook Pro" --discontinued ""`,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return a.catalog.Do(cmd.Context(), func(ctx context.Context, conn bun.IDB) error {
				computer, err := a.catalog.Computers.FindByID(ctx, conn, id)
				if err != nil {
					return err
				}
				if computer == nil {
					return fmt.Errorf("computer %d not found", id)
				}
				computer.Name = args[1]
				if err := flags.apply(cmd, computer); err != nil {
					return err
				}
				if err := a.catalog.Computers.Update(ctx, conn, id, computer); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Computer %s has been updated\n", computer.Name)
				return nil
			})
		},
	}
	flags.register(cmd)
	return cmd
}

func newComputersDeleteCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a computer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return a.catalog.Do(cmd.Context(), func(ctx context.Context, conn bun.IDB) error {
				if err := a.catalog.Computers.Delete(ctx, conn, id); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Computer %d has been deleted\n", id)
				return nil
			})
		},
	}
}

func newCompaniesCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "companies",
		Aliases: []string{"company"},
		Short:   "Company lookups",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "options",
		Short: "List companies as id/name pairs ordered by name",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.catalog.Do(cmd.Context(), func(ctx context.Context, conn bun.IDB) error {
				options, err := a.catalog.Companies.Options(ctx, conn)
				if err != nil {
					return err
				}
				renderOptions(cmd.OutOrStdout(), options)
				return nil
			})
		},
	})
	return cmd
}
