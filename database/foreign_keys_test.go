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
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForeignKeyConstraint_SQL(t *testing.T) {
	fk := DefaultForeignKeyConstraints()[0]
	assert.Equal(t, "fk_computer_companyid", fk.GenerateConstraintName())
	assert.Equal(t,
		"ALTER TABLE computer ADD CONSTRAINT fk_computer_companyid FOREIGN KEY (companyId) REFERENCES company(id) ON DELETE SET NULL",
		fk.GenerateSQL())

	fk.ConstraintName = "computer_company"
	fk.OnUpdate = "cascade"
	assert.Equal(t,
		"ALTER TABLE computer ADD CONSTRAINT computer_company FOREIGN KEY (companyId) REFERENCES company(id) ON DELETE SET NULL ON UPDATE CASCADE",
		fk.GenerateSQL())
}

func TestForeignKeyManager_Validate(t *testing.T) {
	fkm := NewForeignKeyManager(nil)
	assert.Empty(t, fkm.ValidateConstraints())

	fkm.constraints = append(fkm.constraints,
		ForeignKeyConstraint{Table: "computer", Column: "x", ReferenceTable: "company", ReferenceColumn: "id", OnDelete: "EXPLODE"},
		ForeignKeyConstraint{Table: "computer", OnUpdate: "NOPE"},
	)
	// one bad action, then a missing column, reference table, reference column and a bad action
	assert.Len(t, fkm.ValidateConstraints(), 5)
}

func TestForeignKeyManager_ExportAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "fk.yaml")
	require.NoError(t, NewForeignKeyManager(nil).ExportToConfig(path))

	loaded, err := LoadForeignKeyConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultForeignKeyConstraints(), loaded)

	fkm := NewForeignKeyManagerFromFile(nil, path)
	assert.Len(t, fkm.GetConstraintsByTable("COMPUTER"), 1)
	assert.Empty(t, fkm.GetConstraintsByTable("company"))

	fallback := NewForeignKeyManagerFromFile(nil, filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Equal(t, DefaultForeignKeyConstraints(), fallback.ListAllConstraints())
}
