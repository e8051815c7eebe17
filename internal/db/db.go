package db

import "database/sql"

// DB wraps the sql connection pool so repositories depend on one
// internal type rather than database/sql directly.
type DB struct {
	*sql.DB
}
