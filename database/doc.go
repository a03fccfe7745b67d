// Package database provides connection management, table bootstrap, foreign
// key handling, SQL seed files, configuration types, logging, query hooks and
// error classification built on top of Bun.
package database
