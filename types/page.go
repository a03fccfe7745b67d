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

package types

import "strings"

// Default values applied by NewPageRequest.
const (
	DefaultPage     = 0
	DefaultPageSize = 10
	DefaultOrderBy  = 1
	MatchAll        = "%"
)

// PageRequest describes a zero-based page window, a name filter pattern, and
// the requested sort column.
type PageRequest struct {
	page     int
	pageSize int
	filter   string
	orderBy  int
}

// PageOption customizes a PageRequest.
type PageOption func(*PageRequest)

// WithPage sets the zero-based page index. Negative values fall back to 0.
func WithPage(page int) PageOption {
	return func(p *PageRequest) { p.page = page }
}

// WithPageSize sets the window size. Negative values fall back to the
// default; zero is kept and yields an empty window.
func WithPageSize(pageSize int) PageOption {
	return func(p *PageRequest) { p.pageSize = pageSize }
}

// WithFilter sets the name filter pattern.
func WithFilter(filter string) PageOption {
	return func(p *PageRequest) { p.filter = filter }
}

// WithOrderBy records the requested sort column. Listing queries accept it
// but do not sort by it.
func WithOrderBy(orderBy int) PageOption {
	return func(p *PageRequest) { p.orderBy = orderBy }
}

// NewPageRequest constructs a PageRequest starting from the defaults
// (page 0, size 10, filter "%", orderBy 1).
func NewPageRequest(opts ...PageOption) *PageRequest {
	p := &PageRequest{
		page:     DefaultPage,
		pageSize: DefaultPageSize,
		filter:   MatchAll,
		orderBy:  DefaultOrderBy,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *PageRequest) GetPage() int {
	if p.page < 0 {
		p.page = DefaultPage
	}
	return p.page
}

func (p *PageRequest) GetPageSize() int {
	if p.pageSize < 0 {
		p.pageSize = DefaultPageSize
	}
	return p.pageSize
}

// GetOffset returns pageSize * page.
func (p *PageRequest) GetOffset() int {
	return p.GetPageSize() * p.GetPage()
}

// GetFilter returns the normalized LIKE pattern for the request.
func (p *PageRequest) GetFilter() string {
	return NormalizeFilter(p.filter)
}

func (p *PageRequest) GetOrderBy() int {
	return p.orderBy
}

// NormalizeFilter turns a user filter into a LIKE pattern. An empty filter
// matches everything, a filter without wildcards matches as a substring, and
// a filter that already carries '%' or '_' is used verbatim.
func NormalizeFilter(filter string) string {
	if filter == "" {
		return MatchAll
	}
	if strings.ContainsAny(filter, "%_") {
		return filter
	}
	return "%" + filter + "%"
}

// Page is one window of a larger filtered result set.
type Page[T any] struct {
	Items    []T `json:"items"`
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
	Offset   int `json:"offset"`
	Total    int `json:"total"`
}

// NewPage builds the envelope for items fetched with the given request.
func NewPage[T any](req *PageRequest, items []T, total int) *Page[T] {
	if items == nil {
		items = make([]T, 0)
	}
	return &Page[T]{
		Items:    items,
		Page:     req.GetPage(),
		PageSize: req.GetPageSize(),
		Offset:   req.GetOffset(),
		Total:    total,
	}
}

// NewEmptyPage returns an envelope with no items and no total.
func NewEmptyPage[T any](req *PageRequest) *Page[T] {
	return NewPage[T](req, nil, 0)
}

// Prev returns the previous page index, if there is one.
func (p *Page[T]) Prev() (int, bool) {
	if p.Page > 0 {
		return p.Page - 1, true
	}
	return 0, false
}

// Next returns the next page index when rows remain past this window.
func (p *Page[T]) Next() (int, bool) {
	if p.Offset+len(p.Items) < p.Total {
		return p.Page + 1, true
	}
	return 0, false
}
