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

// TableMapping complements an entity's bun struct tags with the pieces a
// generic repository needs to address rows by key and by name.
type TableMapping[T any, ID comparable] struct {
	Table      string
	IDColumn   string
	NameColumn string
	Identity   IdentityStrategy
	GetID      func(*T) ID
	SetID      func(*T, ID)
}

// HasID reports whether the entity carries a non-zero key.
func (m TableMapping[T, ID]) HasID(entity *T) bool {
	var zero ID
	return m.GetID(entity) != zero
}

// Option is an id/label pair for select lists.
type Option struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}
