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

const RealEstateTable = "REAL_ESTATE"

// RealEstate keys are supplied by the caller; storage never generates them.
type RealEstate struct {
	bun.BaseModel `bun:"table:REAL_ESTATE,alias:re"`

	ID      string `bun:"REAL_ESTATE_ID,pk" json:"id" yaml:"id"`
	Name    string `bun:"NAME,notnull" json:"name" yaml:"name"`
	Street  string `bun:"STREET,notnull" json:"street" yaml:"street"`
	City    string `bun:"CITY,notnull" json:"city" yaml:"city"`
	State   string `bun:"STATE,notnull" json:"state" yaml:"state"`
	Country string `bun:"COUNTRY,notnull" json:"country" yaml:"country"`
	Zip     string `bun:"ZIP,notnull" json:"zip" yaml:"zip"`
}

var RealEstateMapping = types.TableMapping[RealEstate, string]{
	Table:      RealEstateTable,
	IDColumn:   "REAL_ESTATE_ID",
	NameColumn: "NAME",
	Identity:   types.IdentityAssigned,
	GetID:      func(r *RealEstate) string { return r.ID },
	SetID:      func(r *RealEstate, id string) { r.ID = id },
}

// RealEstateUpdatableColumns lists every non-key column, for upserts.
var RealEstateUpdatableColumns = []string{"NAME", "STREET", "CITY", "STATE", "COUNTRY", "ZIP"}
