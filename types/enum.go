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

// Common illegal/default values used by enums.
const (
	IllegalValue = -1
	IllegalName  = "unknown"
	IllegalDesc  = "unknown"
)

// BaseEnum represents a basic enum contract used by domain types.
type BaseEnum interface {
	IsValid() bool
	Number() int
	String() string
	Desc() string
	Name() string
}

// IdentityStrategy says who assigns an entity's primary key.
type IdentityStrategy int

const (
	// IdentityAutoIncrement lets storage assign the key on insert.
	IdentityAutoIncrement IdentityStrategy = iota
	// IdentityAssigned requires the caller to supply the key.
	IdentityAssigned
)

var _ BaseEnum = IdentityAutoIncrement

var identityNames = map[IdentityStrategy][2]string{
	IdentityAutoIncrement: {"auto_increment", "primary key assigned by storage"},
	IdentityAssigned:      {"assigned", "primary key supplied by the caller"},
}

func (s IdentityStrategy) IsValid() bool {
	_, ok := identityNames[s]
	return ok
}

func (s IdentityStrategy) Number() int {
	if !s.IsValid() {
		return IllegalValue
	}
	return int(s)
}

func (s IdentityStrategy) String() string { return s.Name() }

func (s IdentityStrategy) Name() string {
	if n, ok := identityNames[s]; ok {
		return n[0]
	}
	return IllegalName
}

func (s IdentityStrategy) Desc() string {
	if n, ok := identityNames[s]; ok {
		return n[1]
	}
	return IllegalDesc
}

// StorageAssigned reports whether the key comes back from an insert.
func (s IdentityStrategy) StorageAssigned() bool {
	return s == IdentityAutoIncrement
}
