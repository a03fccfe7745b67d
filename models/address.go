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
	"strings"
)

// Address is a postal address value. It has no table of its own.
type Address struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	StreetNumber string `json:"street_number"`
	Street       string `json:"street"`
	City         string `json:"city"`
	PostalCode   string `json:"postal_code"`
	County       string `json:"county"`
	Country      string `json:"country"`
}

// String formats the address on one line, e.g.
// "Home, 12 High Street, 90210 Springfield, Kent, UK". Empty parts are skipped.
func (a Address) String() string {
	parts := make([]string, 0, 5)
	add := func(s string) {
		if s = strings.TrimSpace(s); s != "" {
			parts = append(parts, s)
		}
	}
	add(a.Name)
	add(a.StreetNumber + " " + a.Street)
	add(a.PostalCode + " " + a.City)
	add(a.County)
	add(a.Country)
	return strings.Join(parts, ", ")
}
