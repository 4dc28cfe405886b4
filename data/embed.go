// Package data carries the embedded bootstrap SQL the container harness
// feeds to a fresh MariaDB instance.
package data

import (
	_ "embed"
)

//go:embed initdb/mariadb/002-ddl-tables.sql
var LedgerTablesSQL string

//go:embed initdb/mariadb/003-ddl-privileges.sql
var LedgerPrivilegesSQL string
