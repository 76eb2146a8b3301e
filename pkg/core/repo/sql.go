// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

import "context"

// Pool hands out connections of a SQL credential store. A connection
// is only valid during its handler execution and is returned to the
// pool afterwards.
type Pool interface {
	Conn(ctx context.Context, handler ConnHandler) error
}

// ConnHandler uses one pooled connection.
type ConnHandler func(context.Context, Conn) error

// Conn is a single SQL connection. It is not safe for concurrent use.
type Conn interface {
	Queryer

	// Tx runs handler in a transaction, committing it iff handler
	// returns nil.
	Tx(ctx context.Context, handler TxHandler) error

	IsConn()
}

// TxHandler uses one transaction.
type TxHandler func(context.Context, Tx) error

// Tx is a READ-COMMITTED transaction. Statements which are executed
// in one Tx are committed or rolled back together, so a credential is
// never persisted partially.
type Tx interface {
	Queryer

	// IsTx keeps a Conn from being passed as a Tx by mistake.
	IsTx()
}

// Queryer runs raw SQL statements. Exec reports the number of affected
// rows, while Query returns the rows which must be closed.
type Queryer interface {
	Exec(ctx context.Context, sql string, args ...any) (count int64, err error)
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
}

// Rows iterates over the result of a Query.
type Rows interface {
	Close()
	Err() error
	Next() bool
	Scan(dest ...any) error
	Values() ([]any, error)
}
