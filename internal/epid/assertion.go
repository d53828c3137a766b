/*
 * Copyright (c) 2025 SECOM CO., LTD. All Rights reserved.
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package epid

import (
	"fmt"

	"github.com/veraison/eat"
	cose "github.com/veraison/go-cose"
)

// The MAROE prefix rides in the unprotected header of the device's COSE Sign1
// under the EATMAROEPrefix label.
const maroePrefixLabel int64 = -258

// SignatureAssertion is the parsed view of a device's COSE Sign1 attestation
// object: the raw EPID signature bytes, the freshness nonce from the EAT
// payload and the vendor MAROE prefix from the unprotected header.
type SignatureAssertion struct {
	Signature   []byte
	Nonce       []byte
	MaroePrefix []byte
}

// ParseSignatureAssertion decodes a tagged or untagged COSE Sign1 message and
// extracts the fields the verifier adapter needs. The signature itself is not
// checked here; the online verifier owns the EPID group-signature math.
func ParseSignatureAssertion(raw []byte) (*SignatureAssertion, error) {
	msg, err := tryCOSESign1(raw)
	if err != nil {
		return nil, err
	}

	prefix, ok := msg.Headers.Unprotected[maroePrefixLabel].([]byte)
	if !ok || len(prefix) == 0 {
		return nil, ErrMaroePrefixMissing
	}

	var claims eat.Eat
	if err := claims.FromCBOR(msg.Payload); err != nil {
		return nil, fmt.Errorf("decode EAT payload: %w", err)
	}
	if claims.Nonce == nil || claims.Nonce.Len() == 0 {
		return nil, ErrNonceMissing
	}

	return &SignatureAssertion{
		Signature:   msg.Signature,
		Nonce:       claims.Nonce.GetI(0),
		MaroePrefix: prefix,
	}, nil
}

func tryCOSESign1(raw []byte) (*cose.Sign1Message, error) {
	var sign1 cose.Sign1Message
	if err := sign1.UnmarshalCBOR(raw); err == nil {
		return &sign1, nil
	}
	var untagged cose.UntaggedSign1Message
	if err := untagged.UnmarshalCBOR(raw); err == nil {
		m := cose.Sign1Message(untagged)
		return &m, nil
	}
	return nil, ErrNotCOSESign1
}
