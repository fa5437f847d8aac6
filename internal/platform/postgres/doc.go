// Package postgres contains the PostgreSQL-backed implementations of the
// persistence interfaces defined in internal/store. Each store accepts a
// store.DBTX so it can run against either a connection pool or an open
// transaction.
package postgres
