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

package repository

import (
	"context"
	"errors"

	"github.com/tomoncle/catalog/models"
	"github.com/tomoncle/catalog/types"
	"github.com/uptrace/bun"
)

// ErrIdentityRequired is returned when an entity whose key is supplied by
// the caller is written without one.
var ErrIdentityRequired = errors.New("repository: entity requires a caller-assigned id")

// ErrUpsertUnsupported is returned by Upsert on a dialect with neither
// ON CONFLICT nor ON DUPLICATE KEY support.
var ErrUpsertUnsupported = errors.New("repository: dialect does not support upsert")

// CrudRepository defines key-addressed operations. Every method runs on the
// handle it is given; a *bun.DB, bun.Conn and bun.Tx all qualify.
type CrudRepository[T any, ID comparable] interface {
	// FindByID returns nil, nil when no row has the key.
	FindByID(ctx context.Context, db bun.IDB, id ID) (*T, error)

	// Insert writes the entity and returns its key. Storage-assigned keys are
	// written back to the entity.
	Insert(ctx context.Context, db bun.IDB, entity *T) (ID, error)

	// Update overwrites the row with key id. The entity's own key is replaced
	// by id first.
	Update(ctx context.Context, db bun.IDB, id ID, entity *T) error

	Delete(ctx context.Context, db bun.IDB, id ID) error

	// Upsert inserts the entities or, on key conflict, overwrites fields.
	Upsert(ctx context.Context, db bun.IDB, fields []string, entity ...*T) error
}

// PageQueryRepository defines counting and windowed listing by name filter.
type PageQueryRepository[T any] interface {
	Count(ctx context.Context, db bun.IDB) (int, error)
	CountFiltered(ctx context.Context, db bun.IDB, filter string) (int, error)
	Page(ctx context.Context, db bun.IDB, req *types.PageRequest) (*types.Page[T], error)
}

// Repository combines key-addressed and paginated operations for one table.
type Repository[T any, ID comparable] interface {
	CrudRepository[T, ID]
	PageQueryRepository[T]
	Mapping() types.TableMapping[T, ID]
}

type CompanyRepository interface {
	Repository[models.Company, int64]

	// Options returns every company as an id/name pair, ordered by name.
	Options(ctx context.Context, db bun.IDB) ([]types.Option, error)
}

type ComputerRepository interface {
	Repository[models.Computer, int64]

	// List returns a window of computers whose name matches the request
	// filter, each paired with its company when that company exists.
	List(ctx context.Context, db bun.IDB, req *types.PageRequest) (*types.Page[models.ComputerWithCompany], error)
}

type RealEstateRepository interface {
	Repository[models.RealEstate, string]
}
