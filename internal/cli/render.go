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
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/tomoncle/catalog/database"
	"github.com/tomoncle/catalog/models"
	"github.com/tomoncle/catalog/types"
)

func newTable(w io.Writer, header table.Row) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(header)
	return t
}

// renderPageFooter prints the window position and the prev/next page
// indexes a caller can ask for.
func renderPageFooter[T any](w io.Writer, page *types.Page[T]) {
	from, to := page.Offset+1, page.Offset+len(page.Items)
	if len(page.Items) == 0 {
		from = page.Offset
	}
	_, _ = fmt.Fprintf(w, "Displaying %d to %d of %d\n", from, to, page.Total)
	if prev, ok := page.Prev(); ok {
		_, _ = fmt.Fprintf(w, "Previous: --page %d\n", prev)
	}
	if next, ok := page.Next(); ok {
		_, _ = fmt.Fprintf(w, "Next: --page %d\n", next)
	}
}

func renderComputers(w io.Writer, page *types.Page[models.ComputerWithCompany]) {
	if len(page.Items) == 0 {
		_, _ = fmt.Fprintln(w, "Nothing to display")
	} else {
		t := newTable(w, table.Row{"ID", "Name", "Introduced", "Discontinued", "Company"})
		for _, item := range page.Items {
			t.AppendRow(table.Row{
				item.Computer.ID,
				item.Computer.Name,
				formatDate(item.Computer.Introduced),
				formatDate(item.Computer.Discontinued),
				companyName(item.Company),
			})
		}
		t.Render()
	}
	renderPageFooter(w, page)
}

func renderComputer(w io.Writer, c *models.Computer) {
	t := newTable(w, table.Row{"Field", "Value"})
	company := "-"
	if c.CompanyID != nil {
		company = strconv.FormatInt(*c.CompanyID, 10)
	}
	t.AppendRows([]table.Row{
		{"ID", c.ID},
		{"Name", c.Name},
		{"Introduced", formatDate(c.Introduced)},
		{"Discontinued", formatDate(c.Discontinued)},
		{"Company ID", company},
	})
	t.Render()
}

func renderOptions(w io.Writer, options []types.Option) {
	t := newTable(w, table.Row{"ID", "Company"})
	for _, o := range options {
		t.AppendRow(table.Row{o.ID, o.Label})
	}
	t.Render()
}

func renderRealEstate(w io.Writer, page *types.Page[models.RealEstate]) {
	if len(page.Items) == 0 {
		_, _ = fmt.Fprintln(w, "Nothing to display")
	} else {
		t := newTable(w, table.Row{"ID", "Name", "Street", "City", "State", "Country", "Zip"})
		for _, re := range page.Items {
			t.AppendRow(table.Row{re.ID, re.Name, re.Street, re.City, re.State, re.Country, re.Zip})
		}
		t.Render()
	}
	renderPageFooter(w, page)
}

func renderHealth(w io.Writer, status *database.HealthStatus, stats *database.DBStats) {
	lastError := status.LastError
	if lastError == "" {
		lastError = "-"
	}
	t := newTable(w, table.Row{"Check", "Value"})
	t.AppendRows([]table.Row{
		{"Healthy", status.Healthy},
		{"Response time", status.ResponseTime},
		{"Open connections", stats.OpenConns},
		{"In use", stats.InUse},
		{"Idle", stats.Idle},
		{"Max open", stats.MaxOpenConns},
		{"Last error", lastError},
	})
	t.Render()
}

func formatDate(ts *types.Timestamp) string {
	if ts == nil {
		return "-"
	}
	return ts.String()
}

func companyName(c *models.Company) string {
	if c == nil {
		return "-"
	}
	return c.Name
}
