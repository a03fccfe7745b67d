// Package models declares the persisted record types and their table
// mappings: companies, computers and real estate entries, plus the Address
// value object.
package models
