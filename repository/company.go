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
	"strconv"

	"github.com/tomoncle/catalog/models"
	"github.com/tomoncle/catalog/types"
	"github.com/uptrace/bun"
)

type companyRepositoryImpl struct {
	Repository[models.Company, int64]
}

func NewCompanyRepository() CompanyRepository {
	return &companyRepositoryImpl{NewRepository(models.CompanyMapping)}
}

func (r *companyRepositoryImpl) Options(ctx context.Context, db bun.IDB) ([]types.Option, error) {
	var companies []models.Company
	err := db.NewSelect().
		Model(&companies).
		Column("id", "name").
		Order("name ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	options := make([]types.Option, 0, len(companies))
	for _, c := range companies {
		options = append(options, types.Option{ID: strconv.FormatInt(c.ID, 10), Label: c.Name})
	}
	return options, nil
}
