/*
 * Copyright (c) 2025 SECOM CO., LTD. All Rights reserved.
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package epidonline

import "context"

// IProofPoster defines an interface for submitting proof requests to the
// EPID online verification service. It returns the service's HTTP status
// code; interpreting the status belongs to the caller.
type IProofPoster interface {
	PostProof(ctx context.Context, path string, body []byte) (int, error)
}
