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
	"database/sql"
	"errors"
	"fmt"

	"github.com/tomoncle/catalog/types"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/feature"
)

type baseRepositoryImpl[T any, ID comparable] struct {
	mapping types.TableMapping[T, ID]
}

// NewRepository returns a generic repository for the table described by
// mapping. T must be a bun model whose tags agree with the mapping.
func NewRepository[T any, ID comparable](mapping types.TableMapping[T, ID]) Repository[T, ID] {
	return &baseRepositoryImpl[T, ID]{mapping: mapping}
}

func (r *baseRepositoryImpl[T, ID]) Mapping() types.TableMapping[T, ID] { return r.mapping }

func (r *baseRepositoryImpl[T, ID]) FindByID(ctx context.Context, db bun.IDB, id ID) (*T, error) {
	entity := new(T)
	err := db.NewSelect().
		Model(entity).
		Where("?TableAlias.? = ?", bun.Ident(r.mapping.IDColumn), id).
		Limit(1).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return entity, nil
}

func (r *baseRepositoryImpl[T, ID]) Count(ctx context.Context, db bun.IDB) (int, error) {
	return db.NewSelect().Model((*T)(nil)).Count(ctx)
}

func (r *baseRepositoryImpl[T, ID]) CountFiltered(ctx context.Context, db bun.IDB, filter string) (int, error) {
	return r.filtered(db, filter).Count(ctx)
}

func (r *baseRepositoryImpl[T, ID]) filtered(db bun.IDB, filter string) *bun.SelectQuery {
	return db.NewSelect().
		Model((*T)(nil)).
		Where("lower(?TableAlias.?) LIKE lower(?)", bun.Ident(r.mapping.NameColumn), types.NormalizeFilter(filter))
}

func (r *baseRepositoryImpl[T, ID]) Page(ctx context.Context, db bun.IDB, req *types.PageRequest) (*types.Page[T], error) {
	total, err := r.CountFiltered(ctx, db, req.GetFilter())
	if err != nil {
		return nil, err
	}
	if total == 0 || req.GetPageSize() == 0 {
		return types.NewPage[T](req, nil, total), nil
	}
	var items []T
	err = r.filtered(db, req.GetFilter()).
		Model(&items).
		Offset(req.GetOffset()).
		Limit(req.GetPageSize()).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return types.NewPage(req, items, total), nil
}

func (r *baseRepositoryImpl[T, ID]) Insert(ctx context.Context, db bun.IDB, entity *T) (ID, error) {
	var zero ID
	if !r.mapping.Identity.StorageAssigned() && !r.mapping.HasID(entity) {
		return zero, ErrIdentityRequired
	}
	res, err := db.NewInsert().Model(entity).Exec(ctx)
	if err != nil {
		return zero, err
	}
	if r.mapping.Identity.StorageAssigned() && !r.mapping.HasID(entity) {
		// Drivers without RETURNING report the key through LastInsertId.
		if err := r.applyLastInsertID(res, entity); err != nil {
			return zero, err
		}
	}
	return r.mapping.GetID(entity), nil
}

func (r *baseRepositoryImpl[T, ID]) applyLastInsertID(res sql.Result, entity *T) error {
	var id ID
	p, ok := any(&id).(*int64)
	if !ok {
		return fmt.Errorf("cannot read generated key of type %T for table %s", id, r.mapping.Table)
	}
	last, err := res.LastInsertId()
	if err != nil {
		return err
	}
	*p = last
	r.mapping.SetID(entity, id)
	return nil
}

func (r *baseRepositoryImpl[T, ID]) Update(ctx context.Context, db bun.IDB, id ID, entity *T) error {
	r.mapping.SetID(entity, id)
	_, err := db.NewUpdate().
		Model(entity).
		Where("? = ?", bun.Ident(r.mapping.IDColumn), id).
		Exec(ctx)
	return err
}

func (r *baseRepositoryImpl[T, ID]) Delete(ctx context.Context, db bun.IDB, id ID) error {
	_, err := db.NewDelete().
		Model((*T)(nil)).
		Where("? = ?", bun.Ident(r.mapping.IDColumn), id).
		Exec(ctx)
	return err
}

func (r *baseRepositoryImpl[T, ID]) Upsert(ctx context.Context, db bun.IDB, fields []string, entity ...*T) error {
	if len(fields) == 0 {
		return fmt.Errorf("fields cannot be empty")
	}
	if len(entity) == 0 {
		return nil
	}
	if !r.mapping.Identity.StorageAssigned() {
		for _, e := range entity {
			if !r.mapping.HasID(e) {
				return ErrIdentityRequired
			}
		}
	}

	entities := make([]*T, len(entity))
	copy(entities, entity)

	switch {
	case db.Dialect().Features().Has(feature.InsertOnConflict):
		return r.upsertOnConflict(ctx, db, fields, entities)
	case db.Dialect().Features().Has(feature.InsertOnDuplicateKey):
		return r.upsertOnDuplicateKey(ctx, db, fields, entities)
	default:
		return fmt.Errorf("%w: %s", ErrUpsertUnsupported, db.Dialect().Name())
	}
}

func (r *baseRepositoryImpl[T, ID]) upsertOnDuplicateKey(ctx context.Context, db bun.IDB, fields []string, entities []*T) error {
	q := db.NewInsert().Model(&entities).On("DUPLICATE KEY UPDATE")
	for _, field := range fields {
		q = q.Set("? = VALUES(?)", bun.Ident(field), bun.Ident(field))
	}
	_, err := q.Exec(ctx)
	return err
}

func (r *baseRepositoryImpl[T, ID]) upsertOnConflict(ctx context.Context, db bun.IDB, fields []string, entities []*T) error {
	q := db.NewInsert().Model(&entities).On("CONFLICT (?) DO UPDATE", bun.Ident(r.mapping.IDColumn))
	for _, field := range fields {
		q = q.Set("? = EXCLUDED.?", bun.Ident(field), bun.Ident(field))
	}
	_, err := q.Exec(ctx)
	return err
}
