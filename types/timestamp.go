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

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"time"
)

// Timestamp is a date value stored as epoch milliseconds in a numeric column.
type Timestamp struct {
	time.Time
}

// NewTimestamp truncates t to millisecond precision, the resolution of the
// stored column.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{time.UnixMilli(t.UnixMilli()).UTC()}
}

// TimestampOf is NewTimestamp returning a pointer, handy for nullable fields.
func TimestampOf(t time.Time) *Timestamp {
	ts := NewTimestamp(t)
	return &ts
}

// ParseDate parses a yyyy-MM-dd date into a Timestamp.
func ParseDate(s string) (*Timestamp, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return nil, err
	}
	return TimestampOf(t), nil
}

// Value implements driver.Valuer for Timestamp.
func (t Timestamp) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	return t.UnixMilli(), nil
}

// Scan implements sql.Scanner for Timestamp.
func (t *Timestamp) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		t.Time = time.Time{}
		return nil
	case int64:
		t.Time = time.UnixMilli(v).UTC()
		return nil
	case float64:
		t.Time = time.UnixMilli(int64(v)).UTC()
		return nil
	case []byte:
		return t.scanString(string(v))
	case string:
		return t.scanString(v)
	case time.Time:
		*t = NewTimestamp(v)
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Timestamp", value)
	}
}

func (t *Timestamp) scanString(s string) error {
	ms, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid epoch milliseconds %q: %w", s, err)
	}
	t.Time = time.UnixMilli(ms).UTC()
	return nil
}

// String renders the date part only.
func (t Timestamp) String() string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.DateOnly)
}
