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

func newHealthCommand(a *app) *cobra.Command {
	var reconnect bool

	cmd := &cobra.Command{
		Use:   "health",
		Short: "Ping the database and report pool statistics",
		Example: `  catalogctl health
  catalogctl health --reconnect`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			status, err := a.factory.CheckHealth(cmd.Context(), reconnect)
			if err != nil {
				return fmt.Errorf("reconnect failed: %w", err)
			}
			renderHealth(cmd.OutOrStdout(), status, a.factory.GetStats())
			if !status.Healthy {
				return fmt.Errorf("database is unhealthy: %s", status.LastError)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&reconnect, "reconnect", false, "reopen the pool when the ping fails")
	return cmd
}
