/*
 * Copyright (c) 2025 SECOM CO., LTD. All Rights reserved.
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package epid

import "errors"

var (
	ErrMissingAssertion   = errors.New("signature assertion is missing")
	ErrMissingSigInfo     = errors.New("SigInfo is missing")
	ErrUnsupportedSgType  = errors.New("unsupported sgType")
	ErrNotCOSESign1       = errors.New("not a COSE Sign1 message")
	ErrMaroePrefixMissing = errors.New("MAROE prefix is missing")
	ErrMaroePrefixTooLong = errors.New("MAROE prefix does not fit in one length byte")
	ErrNonceMissing       = errors.New("nonce is missing")
)
