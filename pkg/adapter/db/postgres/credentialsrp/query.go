// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package credentialsrp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/momeni/yacht-charter/pkg/adapter/db/postgres"
	"github.com/momeni/yacht-charter/pkg/core/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Schema creates the credentials table if it does not exist.
const Schema = `CREATE TABLE IF NOT EXISTS credentials (
    profile     TEXT PRIMARY KEY,
    token       TEXT NOT NULL DEFAULT '',
    user_record BYTEA,
    updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
)`

type gCredential struct {
	Profile    string `gorm:"primaryKey"`
	Token      string
	UserRecord []byte
	UpdatedAt  time.Time
}

func (gc *gCredential) TableName() string {
	return "credentials"
}

func (gc *gCredential) Model() *model.Credential {
	return &model.Credential{Token: gc.Token, User: gc.UserRecord}
}

// InitSchema creates the credentials table.
func InitSchema[Q postgres.Queryer](ctx context.Context, q Q) error {
	if _, err := q.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("creating credentials table: %w", err)
	}
	return nil
}

// Load queries the credential of profile. A missing row, or a missing
// table, is reported as (nil, nil).
func Load[Q postgres.Queryer](ctx context.Context, q Q, profile string) (*model.Credential, error) {
	var gc gCredential
	err := q.GORM(ctx).Where("profile = ?", profile).Take(&gc).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound), postgres.IsUndefinedTable(err):
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("query: %w", err)
	}
	return gc.Model(), nil
}

// Save upserts the c credential of profile.
func Save[Q postgres.Queryer](ctx context.Context, q Q, profile string, c model.Credential) error {
	gc := gCredential{
		Profile:    profile,
		Token:      c.Token,
		UserRecord: c.User,
		UpdatedAt:  time.Now(),
	}
	err := q.GORM(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "profile"}},
		DoUpdates: clause.AssignmentColumns([]string{"token", "user_record", "updated_at"}),
	}).Create(&gc).Error
	if err != nil {
		return fmt.Errorf("upsert: %w", err)
	}
	return nil
}

// Clear deletes the credential of profile.
func Clear[Q postgres.Queryer](ctx context.Context, q Q, profile string) error {
	err := q.GORM(ctx).Where("profile = ?", profile).Delete(&gCredential{}).Error
	if err != nil && !postgres.IsUndefinedTable(err) {
		return fmt.Errorf("delete: %w", err)
	}
	return nil
}
