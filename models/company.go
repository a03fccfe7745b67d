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

package models

import (
	"github.com/tomoncle/catalog/types"
	"github.com/uptrace/bun"
)

const CompanyTable = "company"

type Company struct {
	bun.BaseModel `bun:"table:company,alias:company"`

	ID   int64  `bun:"id,pk,autoincrement" json:"id"`
	Name string `bun:"name,notnull" json:"name"`
}

// CompanyMapping addresses company rows by id and name.
var CompanyMapping = types.TableMapping[Company, int64]{
	Table:      CompanyTable,
	IDColumn:   "id",
	NameColumn: "name",
	Identity:   types.IdentityAutoIncrement,
	GetID:      func(c *Company) int64 { return c.ID },
	SetID:      func(c *Company, id int64) { c.ID = id },
}
