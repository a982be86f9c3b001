package db

import "database/sql"

// DB wraps the standard sql.DB so repositories depend on a package-local
// type rather than database/sql directly.
type DB struct {
	*sql.DB
}
