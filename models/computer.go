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

const (
	ComputerTable         = "computer"
	ComputerCompanyColumn = "companyId"
)

// Computer optionally references a Company through CompanyID. Dates are
// persisted as epoch milliseconds.
type Computer struct {
	bun.BaseModel `bun:"table:computer,alias:computer"`

	ID           int64            `bun:"id,pk,autoincrement" json:"id"`
	Name         string           `bun:"name,notnull" json:"name"`
	Introduced   *types.Timestamp `bun:"introduced,type:bigint" json:"introduced,omitempty"`
	Discontinued *types.Timestamp `bun:"discontinued,type:bigint" json:"discontinued,omitempty"`
	CompanyID    *int64           `bun:"companyId" json:"company_id,omitempty"`
}

var ComputerMapping = types.TableMapping[Computer, int64]{
	Table:      ComputerTable,
	IDColumn:   "id",
	NameColumn: "name",
	Identity:   types.IdentityAutoIncrement,
	GetID:      func(c *Computer) int64 { return c.ID },
	SetID:      func(c *Computer, id int64) { c.ID = id },
}

// ComputerWithCompany is one row of the computer listing. Company is nil when
// the computer has no company or references one that does not exist.
type ComputerWithCompany struct {
	Computer Computer `json:"computer"`
	Company  *Company `json:"company,omitempty"`
}
