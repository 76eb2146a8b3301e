// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package postgres

import (
	"context"
	"fmt"

	"github.com/momeni/yacht-charter/pkg/core/repo"
	"gorm.io/gorm"
)

// Conn is a dedicated connection which is taken from a Pool.
type Conn struct {
	*gorm.DB
}

var _ repo.Conn = (*Conn)(nil)

// TxHandler is a function which runs in a transaction.
type TxHandler = repo.TxHandler

// Tx begins a transaction and runs f in it. The transaction commits
// if f returns nil and rolls back otherwise (including panics).
func (c *Conn) Tx(ctx context.Context, f TxHandler) (err error) {
	tx := c.DB.WithContext(ctx).Begin()
	if err = tx.Error; err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if r := recover(); r != nil {
			if err2 := tx.Rollback().Error; err2 != nil {
				err = fmt.Errorf("panicked: %v, rollback: %w", r, err2)
				return
			}
			err = fmt.Errorf("panicked: %v", r)
			return
		}
		if err != nil {
			if err2 := tx.Rollback().Error; err2 != nil {
				err = fmt.Errorf("handler: %w, rollback: %w", err, err2)
				return
			}
			err = fmt.Errorf("handler: %w", err)
			return
		}
		if err = tx.Commit().Error; err != nil {
			err = fmt.Errorf("commit: %w", err)
		}
	}()
	return f(ctx, &Tx{DB: tx})
}

// Exec runs sql with args and returns the number of affected rows.
func (c *Conn) Exec(ctx context.Context, sql string, args ...any) (int64, error) {
	tt := c.DB.WithContext(ctx).Exec(sql, args...)
	if err := tt.Error; err != nil {
		return 0, err
	}
	return tt.RowsAffected, nil
}

// Query runs sql with args and returns its result set.
func (c *Conn) Query(ctx context.Context, sql string, args ...any) (repo.Rows, error) {
	rows, err := c.DB.WithContext(ctx).Raw(sql, args...).Rows()
	return rowsAdapter{rows}, err
}

// IsConn marks Conn as a repo.Conn.
func (c *Conn) IsConn() {
}

// GORM returns the embedded *gorm.DB in a ctx session.
func (c *Conn) GORM(ctx context.Context) *gorm.DB {
	return c.DB.WithContext(ctx)
}
