/*
 * Copyright (c) 2025 SECOM CO., LTD. All Rights reserved.
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/kentakayama/epid-over-http/internal/domain/model"
)

func TestVerification_CreateListRecent(t *testing.T) {
	ctx := context.Background()
	db, err := InitDB(ctx, ":memory:")
	if err != nil {
		t.Fatalf("InitDB error: %v", err)
	}
	defer CloseDB(db)

	repo := NewVerificationRepository(db)
	now := time.Now().UTC().Truncate(time.Second)

	for i, outcome := range []string{"VERIFIED", "INVALID_SIGNATURE", "VERIFIED"} {
		rec := &model.VerificationRecord{
			GroupID:   []byte{byte(i)},
			SgType:    90,
			Outcome:   outcome,
			CreatedAt: now,
		}
		id, err := repo.Create(ctx, rec)
		if err != nil {
			t.Fatalf("Create error: %v", err)
		}
		if id == 0 {
			t.Fatalf("expected non-zero id")
		}
	}

	recs, err := repo.ListRecent(ctx, 2)
	if err != nil {
		t.Fatalf("ListRecent error: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	// newest first
	if recs[0].Outcome != "VERIFIED" || recs[1].Outcome != "INVALID_SIGNATURE" {
		t.Fatalf("unexpected order: %v, %v", recs[0].Outcome, recs[1].Outcome)
	}
}

func TestVerification_FindRecentByGroupID(t *testing.T) {
	ctx := context.Background()
	db, err := InitDB(ctx, ":memory:")
	if err != nil {
		t.Fatalf("InitDB error: %v", err)
	}
	defer CloseDB(db)

	repo := NewVerificationRepository(db)
	now := time.Now().UTC().Truncate(time.Second)

	groupA := []byte{0xaa}
	groupB := []byte{0xbb}
	for _, g := range [][]byte{groupA, groupB, groupA} {
		rec := &model.VerificationRecord{
			GroupID:   g,
			SgType:    91,
			Outcome:   "VERIFIED",
			CreatedAt: now,
		}
		if _, err := repo.Create(ctx, rec); err != nil {
			t.Fatalf("Create error: %v", err)
		}
	}

	recs, err := repo.FindRecentByGroupID(ctx, groupA, 10)
	if err != nil {
		t.Fatalf("FindRecentByGroupID error: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records for group A, got %d", len(recs))
	}
}

func TestVerification_CountByOutcome(t *testing.T) {
	ctx := context.Background()
	db, err := InitDB(ctx, ":memory:")
	if err != nil {
		t.Fatalf("InitDB error: %v", err)
	}
	defer CloseDB(db)

	repo := NewVerificationRepository(db)
	now := time.Now().UTC().Truncate(time.Second)

	for _, outcome := range []string{"VERIFIED", "OUTDATED_SIGRL", "VERIFIED"} {
		rec := &model.VerificationRecord{
			GroupID:   []byte{0x01},
			SgType:    90,
			Outcome:   outcome,
			CreatedAt: now,
		}
		if _, err := repo.Create(ctx, rec); err != nil {
			t.Fatalf("Create error: %v", err)
		}
	}

	n, err := repo.CountByOutcome(ctx, "VERIFIED")
	if err != nil {
		t.Fatalf("CountByOutcome error: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 VERIFIED records, got %d", n)
	}

	n, err = repo.CountByOutcome(ctx, "MALFORMED_REQUEST")
	if err != nil {
		t.Fatalf("CountByOutcome error: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected 0 MALFORMED_REQUEST records, got %d", n)
	}
}
