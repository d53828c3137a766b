/*
 * Copyright (c) 2025 SECOM CO., LTD. All Rights reserved.
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package epid

import "bytes"

// Layout constants of the EPID 1.1 signed payload. The 48-byte header and the
// two 16-byte zero blocks are mandated by the verifier's legacy wire format;
// they carry no input-derived data.
const (
	epid11HeaderLen = 48
	epid11PadLen    = 16
)

// buildEpidPayload reassembles the exact byte sequence the device signed.
// The online verifier recomputes the signature over this sequence, so the
// layout must match byte for byte or verification fails regardless of the
// mathematical validity of the signature.
//
// EPID 1.0: [len(prefix)] ‖ prefix ‖ nonce ‖ signedData. The leading length
// byte lets the verifier skip the variable-length vendor prefix.
//
// EPID 1.1: 48-byte header (byte 4 = 0x48, byte 8 = 0x08, rest zero) ‖
// prefix ‖ 16 zero bytes ‖ nonce ‖ 16 zero bytes ‖ signedData.
func buildEpidPayload(prefix, nonce, signedData []byte, sgType SgType) ([]byte, error) {
	var buf bytes.Buffer
	switch sgType {
	case SgEPID10:
		if len(prefix) > 0xff {
			return nil, ErrMaroePrefixTooLong
		}
		buf.WriteByte(byte(len(prefix)))
		buf.Write(prefix)
		buf.Write(nonce)
		buf.Write(signedData)
	case SgEPID11:
		header := make([]byte, epid11HeaderLen)
		header[4] = 0x48
		header[8] = 0x08
		buf.Write(header)
		buf.Write(prefix)
		buf.Write(make([]byte, epid11PadLen))
		buf.Write(nonce)
		buf.Write(make([]byte, epid11PadLen))
		buf.Write(signedData)
	default:
		return nil, ErrUnsupportedSgType
	}
	return buf.Bytes(), nil
}
