// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package postgres is the PostgreSQL adapter of the durable stores.
// It wraps GORM in a Pool, Conn, and Tx types which implement the
// repo.Pool, repo.Conn, and repo.Tx ports, so the repository packages
// (such as credentialsrp) may run their queries on either of a
// connection or a transaction using the generic Queryer constraint.
package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// These SQLSTATE codes are recognized by the repository packages.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	CodeUndefinedTable   = "42P01"
	CodeCannotConnectNow = "57P03"
)

// SQLState returns the SQLSTATE code of err if it wraps a PostgreSQL
// server error, and an empty string otherwise.
func SQLState(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.SQLState()
	}
	return ""
}

// IsUndefinedTable reports if err indicates a missing table.
func IsUndefinedTable(err error) bool {
	return SQLState(err) == CodeUndefinedTable
}

// IsStartingUp reports if err indicates that the server is starting up
// and does not accept connections yet.
func IsStartingUp(err error) bool {
	return SQLState(err) == CodeCannotConnectNow
}
