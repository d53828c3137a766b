/*
 * Copyright (c) 2025 SECOM CO., LTD. All Rights reserved.
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package epid

import "net/http"

// Outcome is the terminal result of one verification call against the EPID
// online verification service.
type Outcome int

const (
	OutcomeVerified Outcome = iota
	OutcomeMalformedRequest
	OutcomeInvalidSignature
	OutcomeOutdatedSigRL
	OutcomeUnknownError
)

func (o Outcome) String() string {
	switch o {
	case OutcomeVerified:
		return "VERIFIED"
	case OutcomeMalformedRequest:
		return "MALFORMED_REQUEST"
	case OutcomeInvalidSignature:
		return "INVALID_SIGNATURE"
	case OutcomeOutdatedSigRL:
		return "OUTDATED_SIGRL"
	default:
		return "UNKNOWN_ERROR"
	}
}

// outcomeFromStatus maps the verifier's HTTP status code to an Outcome.
// Total: every status lands in exactly one case.
func outcomeFromStatus(status int) Outcome {
	switch status {
	case http.StatusOK:
		return OutcomeVerified
	case http.StatusBadRequest:
		return OutcomeMalformedRequest
	case http.StatusForbidden:
		return OutcomeInvalidSignature
	case http.StatusExpectationFailed:
		// the caller's signature revocation list is stale; refresh and retry
		return OutcomeOutdatedSigRL
	default:
		return OutcomeUnknownError
	}
}
