// Package repository provides table repositories built on Bun. Every
// operation runs on the bun.IDB handle passed to it, so callers decide
// whether work happens on the pool, a dedicated connection, or a transaction.
package repository
