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
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testEnv lays out a config, a seed directory and a file-backed sqlite
// database in a temp dir so state survives across command executions.
func testEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	sqlDir := filepath.Join(dir, "sql", "common")
	require.NoError(t, os.MkdirAll(sqlDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(sqlDir, "001_companies.sql"), []byte(`
INSERT INTO company (id, name) VALUES (1, 'Thinking Machines');
INSERT INTO company (id, name) VALUES (2, 'Apple Inc.');
`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(sqlDir, "002_computers.sql"), []byte(`
INSERT INTO computer (id, name, introduced, {{ ident "companyId" }}) VALUES (1, 'MacBook Pro', 1136851200000, 2);
INSERT INTO computer (id, name, introduced, {{ ident "companyId" }}) VALUES (2, 'CM-5', NULL, 1);
INSERT INTO computer (id, name, introduced, {{ ident "companyId" }}) VALUES (3, 'Mac Clone', NULL, 99);
`), 0o644))

	cfg := fmt.Sprintf(`
database:
  connection_config:
    type: sqlite
    dbname: %s
    slow_query_time: 0s
  data_migrate_config:
    enable_migrate_on_startup: true
  data_init_config:
    filepath: %s
    environment: test
log:
  level: error
`, filepath.Join(dir, "catalog"), filepath.Join(dir, "sql"))
	path := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0o644))
	return path
}

func run(t *testing.T, cfgPath string, args ...string) (string, error) {
	t.Helper()
	cmd, a := newRootCmd()
	defer func() { _ = a.close() }()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(append([]string{"--config", cfgPath}, args...))
	err := cmd.ExecuteContext(context.Background())
	return buf.String(), err
}

func TestCatalogctl_SeedListShowDelete(t *testing.T) {
	cfgPath := testEnv(t)

	out, err := run(t, cfgPath, "seed")
	require.NoError(t, err)
	assert.Contains(t, out, "applied")

	out, err = run(t, cfgPath, "computers", "list", "--filter", "mac")
	require.NoError(t, err)
	assert.Contains(t, out, "MacBook Pro")
	assert.Contains(t, out, "Apple Inc.")
	assert.Contains(t, out, "2006-01-10")
	assert.Contains(t, out, "Mac Clone")
	assert.NotContains(t, out, "CM-5")
	assert.Contains(t, out, "Displaying 1 to 2 of 2")

	out, err = run(t, cfgPath, "computers", "list", "--size", "1", "--page", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Previous: --page 0")
	assert.Contains(t, out, "Next: --page 2")

	out, err = run(t, cfgPath, "computers", "show", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "CM-5")

	_, err = run(t, cfgPath, "computers", "delete", "2")
	require.NoError(t, err)
	_, err = run(t, cfgPath, "computers", "show", "2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	_, err = run(t, cfgPath, "computers", "show", "two")
	assert.Error(t, err)
}

func TestCatalogctl_AddAndCompanyOptions(t *testing.T) {
	cfgPath := testEnv(t)
	_, err := run(t, cfgPath, "seed")
	require.NoError(t, err)

	out, err := run(t, cfgPath, "computers", "add", "Apple IIe", "--introduced", "1983-01-01", "--company", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "has been created with id 4")

	out, err = run(t, cfgPath, "companies", "options")
	require.NoError(t, err)
	assert.Less(t, strings.Index(out, "Apple Inc."), strings.Index(out, "Thinking Machines"))

	_, err = run(t, cfgPath, "computers", "add", "Broken", "--introduced", "yesterday")
	assert.Error(t, err)
}

func TestCatalogctl_RealEstateImport(t *testing.T) {
	cfgPath := testEnv(t)
	dir := filepath.Dir(cfgPath)

	importFile := filepath.Join(dir, "estates.yaml")
	require.NoError(t, os.WriteFile(importFile, []byte(`
real_estate:
  - id: re-001
    name: Harbor View
    street: 1 Pier Rd
    city: Portland
    state: ME
    country: US
    zip: "04101"
  - id: re-002
    name: Desert Flat
    street: 9 Dune Ave
    city: Tucson
    state: AZ
    country: US
    zip: "85701"
`), 0o644))

	out, err := run(t, cfgPath, "realestate", "import", importFile)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 2")

	// importing again overwrites instead of failing on the key
	_, err = run(t, cfgPath, "realestate", "import", importFile)
	require.NoError(t, err)

	out, err = run(t, cfgPath, "realestate", "list", "--filter", "harbor")
	require.NoError(t, err)
	assert.Contains(t, out, "Harbor View")
	assert.NotContains(t, out, "Desert Flat")
	assert.Contains(t, out, "of 1")

	missingID := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(missingID, []byte("real_estate:\n  - name: Nowhere\n"), 0o644))
	_, err = run(t, cfgPath, "realestate", "import", missingID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "caller-assigned id")
}

func TestCatalogctl_Update(t *testing.T) {
	cfgPath := testEnv(t)
	_, err := run(t, cfgPath, "seed")
	require.NoError(t, err)

	out, err := run(t, cfgPath, "computers", "update", "1", "MacBook Pro 15", "--discontinued", "2012-06-11")
	require.NoError(t, err)
	assert.Contains(t, out, "MacBook Pro 15 has been updated")

	out, err = run(t, cfgPath, "computers", "show", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "MacBook Pro 15")
	assert.Contains(t, out, "2006-01-10")
	assert.Contains(t, out, "2012-06-11")

	// an empty date clears it and an unset --company keeps the stored one
	_, err = run(t, cfgPath, "computers", "update", "1", "MacBook Pro 15", "--introduced", "")
	require.NoError(t, err)
	out, err = run(t, cfgPath, "computers", "list", "--filter", "MacBook Pro 15")
	require.NoError(t, err)
	assert.NotContains(t, out, "2006-01-10")
	assert.Contains(t, out, "Apple Inc.")

	_, err = run(t, cfgPath, "computers", "update", "42", "Ghost")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	_, err = run(t, cfgPath, "computers", "update", "1", "Broken", "--discontinued", "someday")
	assert.Error(t, err)
}

func TestCatalogctl_Health(t *testing.T) {
	cfgPath := testEnv(t)

	out, err := run(t, cfgPath, "health")
	require.NoError(t, err)
	assert.Contains(t, out, "Healthy")
	assert.Contains(t, out, "true")

	out, err = run(t, cfgPath, "health", "--reconnect")
	require.NoError(t, err)
	assert.Contains(t, out, "Max open")
}
