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
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tomoncle/catalog/database"
	"github.com/tomoncle/catalog/models"
	"github.com/tomoncle/catalog/types"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/mysqldialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
)

func TestCompany_InsertFindRoundTrip(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewCompanyRepository()

	company := &models.Company{Name: "Apple Inc."}
	id, err := repo.Insert(ctx, db, company)
	require.NoError(t, err)
	assert.NotZero(t, id)
	assert.Equal(t, id, company.ID)

	found, err := repo.FindByID(ctx, db, id)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Apple Inc.", found.Name)
	assert.Equal(t, id, found.ID)
}

func TestFindByID_MissReturnsNil(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	company, err := NewCompanyRepository().FindByID(ctx, db, 42)
	require.NoError(t, err)
	assert.Nil(t, company)

	estate, err := NewRealEstateRepository().FindByID(ctx, db, "missing")
	require.NoError(t, err)
	assert.Nil(t, estate)
}

func TestComputer_DatesRoundTrip(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewComputerRepository()

	introduced, err := types.ParseDate("2006-01-10")
	require.NoError(t, err)
	computer := &models.Computer{Name: "MacBook Pro", Introduced: introduced}
	id, err := repo.Insert(ctx, db, computer)
	require.NoError(t, err)

	found, err := repo.FindByID(ctx, db, id)
	require.NoError(t, err)
	require.NotNil(t, found)
	require.NotNil(t, found.Introduced)
	assert.Equal(t, "2006-01-10", found.Introduced.String())
	assert.Nil(t, found.Discontinued)
	assert.Nil(t, found.CompanyID)
}

func TestCountFiltered(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewComputerRepository()

	for _, name := range []string{"MacBook Pro", "macbook air", "ThinkPad", "Amiga 500"} {
		_, err := repo.Insert(ctx, db, &models.Computer{Name: name})
		require.NoError(t, err)
	}

	tests := []struct {
		filter string
		want   int
	}{
		{"", 4},
		{"%", 4},
		{"MAC", 2},
		{"mac%", 2},
		{"%pad", 1},
		{"amiga _00", 1},
		{"cray", 0},
	}
	for _, tt := range tests {
		t.Run(tt.filter, func(t *testing.T) {
			got, err := repo.CountFiltered(ctx, db, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	total, err := repo.Count(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, 4, total)
}

func TestUpdate_ForcesSuppliedID(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewCompanyRepository()

	first, err := repo.Insert(ctx, db, &models.Company{Name: "Apple"})
	require.NoError(t, err)
	second, err := repo.Insert(ctx, db, &models.Company{Name: "IBM"})
	require.NoError(t, err)

	entity := &models.Company{ID: second, Name: "Apple Computer"}
	require.NoError(t, repo.Update(ctx, db, first, entity))
	assert.Equal(t, first, entity.ID)

	updated, err := repo.FindByID(ctx, db, first)
	require.NoError(t, err)
	assert.Equal(t, "Apple Computer", updated.Name)

	untouched, err := repo.FindByID(ctx, db, second)
	require.NoError(t, err)
	assert.Equal(t, "IBM", untouched.Name)
}

func TestUpdateAndDelete_MissingRowIsNotAnError(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewComputerRepository()

	require.NoError(t, repo.Update(ctx, db, 999, &models.Computer{Name: "ghost"}))
	require.NoError(t, repo.Delete(ctx, db, 999))

	id, err := repo.Insert(ctx, db, &models.Computer{Name: "ZX Spectrum"})
	require.NoError(t, err)
	require.NoError(t, repo.Delete(ctx, db, id))

	found, err := repo.FindByID(ctx, db, id)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestRealEstate_AssignedIdentity(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewRealEstateRepository()

	_, err := repo.Insert(ctx, db, &models.RealEstate{Name: "no id"})
	assert.ErrorIs(t, err, ErrIdentityRequired)
	count, err := repo.Count(ctx, db)
	require.NoError(t, err)
	assert.Zero(t, count)

	estate := &models.RealEstate{
		ID: uuid.NewString(), Name: "Harbor View", Street: "1 Pier Rd",
		City: "Portland", State: "ME", Country: "US", Zip: "04101",
	}
	id, err := repo.Insert(ctx, db, estate)
	require.NoError(t, err)
	assert.Equal(t, estate.ID, id)

	found, err := repo.FindByID(ctx, db, id)
	require.NoError(t, err)
	assert.Equal(t, estate, found)

	dup := *estate
	_, err = repo.Insert(ctx, db, &dup)
	require.Error(t, err)
	is, kind := database.IsSqlError(err)
	assert.True(t, is)
	assert.Equal(t, database.DuplicateKeyErr, kind)
}

func TestRealEstate_Upsert(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewRealEstateRepository()

	id := uuid.NewString()
	estate := &models.RealEstate{ID: id, Name: "Loft", Street: "2 Main St", City: "Austin", State: "TX", Country: "US", Zip: "73301"}
	require.NoError(t, repo.Upsert(ctx, db, models.RealEstateUpdatableColumns, estate))

	changed := *estate
	changed.Name = "Penthouse"
	other := &models.RealEstate{ID: uuid.NewString(), Name: "Cabin", Street: "Lake Rd", City: "Bend", State: "OR", Country: "US", Zip: "97701"}
	require.NoError(t, repo.Upsert(ctx, db, models.RealEstateUpdatableColumns, &changed, other))

	found, err := repo.FindByID(ctx, db, id)
	require.NoError(t, err)
	assert.Equal(t, "Penthouse", found.Name)

	total, err := repo.Count(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, 2, total)

	err = repo.Upsert(ctx, db, models.RealEstateUpdatableColumns, &models.RealEstate{Name: "no id"})
	assert.ErrorIs(t, err, ErrIdentityRequired)
	assert.Error(t, repo.Upsert(ctx, db, nil, estate))
}

func TestPage_SingleTable(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewRealEstateRepository()

	for _, name := range []string{"Alpha", "Beta", "Gamma", "Delta", "Epsilon"} {
		_, err := repo.Insert(ctx, db, &models.RealEstate{ID: uuid.NewString(), Name: name})
		require.NoError(t, err)
	}

	page, err := repo.Page(ctx, db, types.NewPageRequest(types.WithPage(1), types.WithPageSize(2)))
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, 5, page.Total)
	assert.Equal(t, 2, page.Offset)

	last, err := repo.Page(ctx, db, types.NewPageRequest(types.WithPage(2), types.WithPageSize(2)))
	require.NoError(t, err)
	assert.Len(t, last.Items, 1)
	_, hasNext := last.Next()
	assert.False(t, hasNext)

	empty, err := repo.Page(ctx, db, types.NewPageRequest(types.WithPageSize(0)))
	require.NoError(t, err)
	assert.Empty(t, empty.Items)
	assert.Equal(t, 5, empty.Total)
}

func TestRepository_PropagatesStorageErrors(t *testing.T) {
	sqldb, mock, err := sqlmock.New()
	require.NoError(t, err)
	db := bun.NewDB(sqldb, sqlitedialect.New())
	defer func() { _ = db.Close() }()

	boom := errors.New("connection reset by peer")
	ctx := context.Background()
	repo := NewComputerRepository()

	mock.ExpectQuery("SELECT").WillReturnError(boom)
	_, err = repo.FindByID(ctx, db, 1)
	assert.ErrorIs(t, err, boom)

	mock.ExpectQuery("SELECT count").WillReturnError(boom)
	_, err = repo.List(ctx, db, types.NewPageRequest())
	assert.ErrorIs(t, err, boom)

	mock.ExpectExec("DELETE").WillReturnError(boom)
	assert.ErrorIs(t, repo.Delete(ctx, db, 1), boom)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRealEstate_UpsertOnDuplicateKey(t *testing.T) {
	sqldb, mock, err := sqlmock.New()
	require.NoError(t, err)
	db := bun.NewDB(sqldb, mysqldialect.New())
	defer func() { _ = db.Close() }()

	estate := &models.RealEstate{ID: "re-1", Name: "Loft", Street: "2 Main St", City: "Austin", State: "TX", Country: "US", Zip: "73301"}
	mock.ExpectExec("INSERT INTO `REAL_ESTATE` .* ON DUPLICATE KEY UPDATE `NAME` = VALUES\\(`NAME`\\)").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = NewRealEstateRepository().Upsert(context.Background(), db, []string{"NAME"}, estate)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
