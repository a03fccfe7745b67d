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

package catalog

import (
	"context"
	"errors"

	"github.com/tomoncle/catalog/database"
	"github.com/tomoncle/catalog/repository"
	"github.com/uptrace/bun"
)

// Catalog bundles the table repositories with the database they run on.
// Repositories never hold a connection; Do hands one to the callback.
type Catalog struct {
	db *bun.DB

	Companies  repository.CompanyRepository
	Computers  repository.ComputerRepository
	RealEstate repository.RealEstateRepository
}

// New returns a Catalog backed by db.
func New(db *bun.DB) *Catalog {
	return &Catalog{
		db:         db,
		Companies:  repository.NewCompanyRepository(),
		Computers:  repository.NewComputerRepository(),
		RealEstate: repository.NewRealEstateRepository(),
	}
}

// ErrNotOpen is returned by Do when the Catalog has no database.
var ErrNotOpen = errors.New("catalog: database is not open")

// DB returns the underlying pool.
func (c *Catalog) DB() *bun.DB { return c.db }

// Do runs fn on a dedicated connection that is released when fn returns,
// whether it succeeds, fails or panics.
func (c *Catalog) Do(ctx context.Context, fn func(ctx context.Context, conn bun.IDB) error) error {
	if c.db == nil {
		return ErrNotOpen
	}
	return database.WithConn(ctx, c.db, fn)
}
