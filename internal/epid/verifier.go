/*
 * Copyright (c) 2025 SECOM CO., LTD. All Rights reserved.
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package epid

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/kentakayama/epid-over-http/internal/domain/model"
	"github.com/kentakayama/epid-over-http/internal/infra/epidonline"
	"github.com/kentakayama/epid-over-http/internal/infra/sqlite"
)

// Both supported schemes share the EPID 1.1 proof endpoint, resolved against
// the proof client's configured base URL.
const proofPath = "/v1/epid11/proof"

// Verifier adapts device-generated EPID signature assertions into the wire
// format of the online verification service and maps its responses back to a
// small closed set of outcomes.
type Verifier struct {
	poster epidonline.IProofPoster
	logger *log.Logger
	db     *sql.DB         // verification log, optional
	ctx    context.Context // background context for database operations
}

func NewVerifier(poster epidonline.IProofPoster, logger *log.Logger) *Verifier {
	if logger == nil {
		logger = log.Default()
	}
	return &Verifier{
		poster: poster,
		logger: logger,
		ctx:    context.Background(),
	}
}

// InitWithPath attaches a SQLite verification log at the given path
// (":memory:" for tests). Without it Verify still works; attempts are simply
// not recorded.
func (v *Verifier) InitWithPath(dbPath string) error {
	db, err := sqlite.InitDB(v.ctx, dbPath)
	if err != nil {
		return err
	}
	v.db = db
	return nil
}

func (v *Verifier) Close() error {
	return sqlite.CloseDB(v.db)
}

// Verify submits the assertion to the online verifier and returns the
// verification outcome.
//
// A missing assertion or SigInfo and an unsupported sgType are input errors,
// returned as errors before any network call; they must not be conflated with
// the UNKNOWN_ERROR outcome. Transport faults never escape as errors: they
// are logged and collapsed into OutcomeUnknownError.
func (v *Verifier) Verify(assertion *SignatureAssertion, signedData []byte, si *SigInfo) (Outcome, error) {
	if assertion == nil {
		return OutcomeUnknownError, ErrMissingAssertion
	}
	if si == nil {
		return OutcomeUnknownError, ErrMissingSigInfo
	}
	if !si.Type.Supported() {
		return OutcomeUnknownError, fmt.Errorf("%w: %d", ErrUnsupportedSgType, si.Type)
	}

	payload, err := buildEpidPayload(assertion.MaroePrefix, assertion.Nonce, signedData, si.Type)
	if err != nil {
		return OutcomeUnknownError, err
	}

	body, err := encodeProofRequest(si.Info, payload, NormalizeSignature(assertion.Signature))
	if err != nil {
		return OutcomeUnknownError, fmt.Errorf("encode proof request: %w", err)
	}

	outcome := OutcomeUnknownError
	if v.poster == nil {
		v.logger.Printf("no EPID online verifier configured")
	} else if status, err := v.poster.PostProof(v.ctx, proofPath, body); err != nil {
		v.logger.Printf("proof request failed: %v", err)
	} else {
		outcome = outcomeFromStatus(status)
	}

	v.record(si, outcome)
	return outcome, nil
}

// RecentResults returns the most recent verification log records. It may be
// accessed from outside the verifier, such as the management API handler.
func (v *Verifier) RecentResults(limit int) ([]*model.VerificationRecord, error) {
	if v.db == nil {
		return nil, nil
	}
	repo := sqlite.NewVerificationRepository(v.db)
	return repo.ListRecent(v.ctx, limit)
}

func (v *Verifier) record(si *SigInfo, outcome Outcome) {
	if v.db == nil {
		return
	}
	repo := sqlite.NewVerificationRepository(v.db)
	rec := &model.VerificationRecord{
		GroupID:   si.Info,
		SgType:    int64(si.Type),
		Outcome:   outcome.String(),
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	if _, err := repo.Create(v.ctx, rec); err != nil {
		v.logger.Printf("failed to record verification result: %v", err)
	}
}
