package services

import (
	"database/sql"

	intconfig "airline/internal/config"
	intdb "airline/internal/db"
)

func poolOrShared(db *sql.DB) *sql.DB {
	if db != nil {
		return db
	}
	return intconfig.DB
}

// handle keeps a nil *sql.DB from turning into a non-nil DBTX.
func handle(db *sql.DB) intdb.DBTX {
	if db == nil {
		return nil
	}
	return db
}
