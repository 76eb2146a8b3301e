// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/momeni/yacht-charter/pkg/core/repo"
	"gorm.io/gorm"
)

// Tx is a transaction which was begun by Conn.Tx. It is only valid in
// its handler and may not be used concurrently.
type Tx struct {
	*gorm.DB
}

var _ repo.Tx = (*Tx)(nil)

// Exec runs sql with args in tx and returns the number of affected
// rows. Placeholders may be given as $1, ?, or @name.
func (tx *Tx) Exec(ctx context.Context, sql string, args ...any) (int64, error) {
	tt := tx.DB.WithContext(ctx).Exec(sql, args...)
	if err := tt.Error; err != nil {
		return 0, err
	}
	return tt.RowsAffected, nil
}

// Query runs sql with args in tx. The returned rows must be closed
// before running another statement in tx.
func (tx *Tx) Query(ctx context.Context, sql string, args ...any) (repo.Rows, error) {
	rows, err := tx.DB.WithContext(ctx).Raw(sql, args...).Rows()
	return rowsAdapter{rows}, err
}

// IsTx marks Tx as a repo.Tx.
func (tx *Tx) IsTx() {
}

// GORM returns the embedded *gorm.DB in a ctx session.
func (tx *Tx) GORM(ctx context.Context) *gorm.DB {
	return tx.DB.WithContext(ctx)
}

type rowsAdapter struct {
	*sql.Rows
}

// Close releases the rows. Its error is reported by Err.
func (ra rowsAdapter) Close() {
	_ = ra.Rows.Close()
}

// Values scans the current row into a fresh slice.
func (ra rowsAdapter) Values() ([]any, error) {
	cols, err := ra.Columns()
	if err != nil {
		return nil, fmt.Errorf("listing columns: %w", err)
	}
	vals := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range vals {
		ptrs[i] = &vals[i]
	}
	return vals, ra.Scan(ptrs...)
}
