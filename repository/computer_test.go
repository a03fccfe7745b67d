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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tomoncle/catalog/models"
	"github.com/tomoncle/catalog/types"
)

func TestComputerList_LeftJoin(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	companies := NewCompanyRepository()
	computers := NewComputerRepository()

	appleID, err := companies.Insert(ctx, db, &models.Company{Name: "Apple Inc."})
	require.NoError(t, err)

	introduced, err := types.ParseDate("2006-01-10")
	require.NoError(t, err)
	fixtures := []*models.Computer{
		{Name: "MacBook Pro", Introduced: introduced, CompanyID: int64Ptr(appleID)},
		{Name: "Orphan Box"},
		{Name: "Dangling Mac", CompanyID: int64Ptr(appleID + 100)},
	}
	for _, c := range fixtures {
		_, err := computers.Insert(ctx, db, c)
		require.NoError(t, err)
	}

	page, err := computers.List(ctx, db, types.NewPageRequest())
	require.NoError(t, err)
	require.Len(t, page.Items, 3)
	assert.Equal(t, 3, page.Total)

	byName := map[string]models.ComputerWithCompany{}
	for _, item := range page.Items {
		byName[item.Computer.Name] = item
	}

	mac := byName["MacBook Pro"]
	require.NotNil(t, mac.Company)
	assert.Equal(t, appleID, mac.Company.ID)
	assert.Equal(t, "Apple Inc.", mac.Company.Name)
	require.NotNil(t, mac.Computer.Introduced)
	assert.Equal(t, "2006-01-10", mac.Computer.Introduced.String())

	orphan := byName["Orphan Box"]
	assert.Nil(t, orphan.Company)
	assert.Nil(t, orphan.Computer.CompanyID)

	dangling := byName["Dangling Mac"]
	assert.Nil(t, dangling.Company)
	require.NotNil(t, dangling.Computer.CompanyID)
	assert.Equal(t, appleID+100, *dangling.Computer.CompanyID)
}

func TestComputerList_FilterAndWindow(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	computers := NewComputerRepository()

	for _, name := range []string{"MacBook", "Mac Mini", "ThinkPad", "Mac Pro", "iMac", "PowerBook"} {
		_, err := computers.Insert(ctx, db, &models.Computer{Name: name})
		require.NoError(t, err)
	}

	page, err := computers.List(ctx, db, types.NewPageRequest(types.WithFilter("MAC"), types.WithPage(1), types.WithPageSize(2)))
	require.NoError(t, err)
	assert.Equal(t, 4, page.Total)
	assert.Equal(t, 2, page.Offset)
	assert.Len(t, page.Items, 2)
	for _, item := range page.Items {
		assert.Contains(t, []string{"MacBook", "Mac Mini", "Mac Pro", "iMac"}, item.Computer.Name)
	}
	prev, ok := page.Prev()
	assert.True(t, ok)
	assert.Equal(t, 0, prev)
	_, ok = page.Next()
	assert.False(t, ok)

	none, err := computers.List(ctx, db, types.NewPageRequest(types.WithFilter("cray")))
	require.NoError(t, err)
	assert.Empty(t, none.Items)
	assert.Zero(t, none.Total)

	zero, err := computers.List(ctx, db, types.NewPageRequest(types.WithPageSize(0)))
	require.NoError(t, err)
	assert.NotNil(t, zero.Items)
	assert.Empty(t, zero.Items)
	assert.Equal(t, 6, zero.Total)

	beyond, err := computers.List(ctx, db, types.NewPageRequest(types.WithPage(10)))
	require.NoError(t, err)
	assert.Empty(t, beyond.Items)
	assert.Equal(t, 6, beyond.Total)
}

func TestComputerRow_MappingUsesJoinedKeyOnly(t *testing.T) {
	name := "Stale"
	row := computerRow{ID: 7, Name: "Lisa", CompanyID: int64Ptr(3), JoinedCompanyName: &name}
	item := row.toComputerWithCompany()
	assert.Nil(t, item.Company)
	assert.Equal(t, int64(7), item.Computer.ID)
	assert.Equal(t, int64(3), *item.Computer.CompanyID)

	row.JoinedCompanyID = int64Ptr(3)
	row.JoinedCompanyName = nil
	item = row.toComputerWithCompany()
	require.NotNil(t, item.Company)
	assert.Equal(t, int64(3), item.Company.ID)
	assert.Empty(t, item.Company.Name)
}

func TestCompanyOptions_OrderedByName(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewCompanyRepository()

	for _, name := range []string{"Sony", "Apple", "IBM"} {
		_, err := repo.Insert(ctx, db, &models.Company{Name: name})
		require.NoError(t, err)
	}

	options, err := repo.Options(ctx, db)
	require.NoError(t, err)
	require.Len(t, options, 3)
	assert.Equal(t, "Apple", options[0].Label)
	assert.Equal(t, "IBM", options[1].Label)
	assert.Equal(t, "Sony", options[2].Label)
	assert.Equal(t, "1", options[2].ID)
}
