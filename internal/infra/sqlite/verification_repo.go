/*
 * Copyright (c) 2025 SECOM CO., LTD. All Rights reserved.
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/kentakayama/epid-over-http/internal/domain/model"
)

// VerificationRepository handles verification log persistence.
type VerificationRepository struct {
	db *sql.DB
}

func NewVerificationRepository(db *sql.DB) *VerificationRepository {
	return &VerificationRepository{db: db}
}

// Create inserts a new verification record and returns the inserted id.
func (r *VerificationRepository) Create(ctx context.Context, rec *model.VerificationRecord) (int64, error) {
	const q = `
		INSERT INTO verification_results (group_id, sg_type, outcome, created_at)
		VALUES (?, ?, ?, ?)
	`
	res, err := r.db.ExecContext(ctx, q, rec.GroupID, rec.SgType, rec.Outcome, rec.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("insert verification record: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return id, nil
}

// ListRecent returns the latest verification records, newest first.
func (r *VerificationRepository) ListRecent(ctx context.Context, limit int) ([]*model.VerificationRecord, error) {
	const q = `
		SELECT id, group_id, sg_type, outcome, created_at
		FROM verification_results
		ORDER BY id DESC
		LIMIT ?
	`
	rows, err := r.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("query verification records: %w", err)
	}
	defer rows.Close()

	var recs []*model.VerificationRecord
	for rows.Next() {
		var rec model.VerificationRecord
		if err := rows.Scan(&rec.ID, &rec.GroupID, &rec.SgType, &rec.Outcome, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan verification record: %w", err)
		}
		recs = append(recs, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return recs, nil
}

// FindRecentByGroupID returns the latest records for one EPID group.
func (r *VerificationRepository) FindRecentByGroupID(ctx context.Context, groupID []byte, limit int) ([]*model.VerificationRecord, error) {
	const q = `
		SELECT id, group_id, sg_type, outcome, created_at
		FROM verification_results
		WHERE group_id = ?
		ORDER BY id DESC
		LIMIT ?
	`
	rows, err := r.db.QueryContext(ctx, q, groupID, limit)
	if err != nil {
		return nil, fmt.Errorf("query verification records: %w", err)
	}
	defer rows.Close()

	var recs []*model.VerificationRecord
	for rows.Next() {
		var rec model.VerificationRecord
		if err := rows.Scan(&rec.ID, &rec.GroupID, &rec.SgType, &rec.Outcome, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan verification record: %w", err)
		}
		recs = append(recs, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return recs, nil
}

// CountByOutcome returns how many records carry the given outcome.
func (r *VerificationRepository) CountByOutcome(ctx context.Context, outcome string) (int64, error) {
	const q = `
		SELECT COUNT(*)
		FROM verification_results
		WHERE outcome = ?
	`
	row := r.db.QueryRowContext(ctx, q, outcome)
	var n int64
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("count verification records: %w", err)
	}
	return n, nil
}
