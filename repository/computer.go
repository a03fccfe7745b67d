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

	"github.com/tomoncle/catalog/models"
	"github.com/tomoncle/catalog/types"
	"github.com/uptrace/bun"
)

type computerRepositoryImpl struct {
	Repository[models.Computer, int64]
}

func NewComputerRepository() ComputerRepository {
	return &computerRepositoryImpl{NewRepository(models.ComputerMapping)}
}

// computerRow is the flat shape of one joined listing row. The joined
// company columns are NULL when the left join found no company.
type computerRow struct {
	ID                int64            `bun:"id"`
	Name              string           `bun:"name"`
	Introduced        *types.Timestamp `bun:"introduced"`
	Discontinued      *types.Timestamp `bun:"discontinued"`
	CompanyID         *int64           `bun:"company_id"`
	JoinedCompanyID   *int64           `bun:"joined_company_id"`
	JoinedCompanyName *string          `bun:"joined_company_name"`
}

func (row *computerRow) toComputerWithCompany() models.ComputerWithCompany {
	item := models.ComputerWithCompany{
		Computer: models.Computer{
			ID:           row.ID,
			Name:         row.Name,
			Introduced:   row.Introduced,
			Discontinued: row.Discontinued,
			CompanyID:    row.CompanyID,
		},
	}
	if row.JoinedCompanyID == nil {
		return item
	}
	item.Company = &models.Company{ID: *row.JoinedCompanyID}
	if row.JoinedCompanyName != nil {
		item.Company.Name = *row.JoinedCompanyName
	}
	return item
}

func (r *computerRepositoryImpl) List(ctx context.Context, db bun.IDB, req *types.PageRequest) (*types.Page[models.ComputerWithCompany], error) {
	total, err := r.CountFiltered(ctx, db, req.GetFilter())
	if err != nil {
		return nil, err
	}
	if total == 0 || req.GetPageSize() == 0 {
		return types.NewPage[models.ComputerWithCompany](req, nil, total), nil
	}

	var rows []computerRow
	err = db.NewSelect().
		TableExpr("? AS c", bun.Ident(models.ComputerTable)).
		ColumnExpr("c.id, c.name, c.introduced, c.discontinued").
		ColumnExpr("c.? AS company_id", bun.Ident(models.ComputerCompanyColumn)).
		ColumnExpr("co.id AS joined_company_id, co.name AS joined_company_name").
		Join("LEFT JOIN ? AS co ON co.id = c.?", bun.Ident(models.CompanyTable), bun.Ident(models.ComputerCompanyColumn)).
		Where("lower(c.name) LIKE lower(?)", req.GetFilter()).
		Offset(req.GetOffset()).
		Limit(req.GetPageSize()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, err
	}

	items := make([]models.ComputerWithCompany, 0, len(rows))
	for i := range rows {
		items = append(items, rows[i].toComputerWithCompany())
	}
	return types.NewPage(req, items, total), nil
}
