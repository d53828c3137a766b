/*
 * Copyright (c) 2025 SECOM CO., LTD. All Rights reserved.
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package epid

// Signature lengths produced by legacy EPID device firmware. The canonical
// verifier format is a fixed set of mandatory fields plus optional trailing
// proof entries in 160-byte blocks. Old firmware may prepend a 4-byte
// sver/blobid header, omit the trailing sigRLVersion and n2 fields, or both,
// and the signature carries no format tag, so only its length tells the
// variants apart.
const (
	sigWithHeaderNoCounts   = 569
	sigNoHeaderNoCounts     = 565
	sigWithHeaderWithCounts = 573
	sigProofEntryLen        = 160
)

// NormalizeSignature rewrites a device-supplied EPID signature into the
// layout the online verifier expects. It is total: unrecognized lengths pass
// through unchanged, and the input is never mutated. The branch order must
// not change; first match wins when lengths alias.
func NormalizeSignature(sig []byte) []byte {
	switch {
	case len(sig) == sigWithHeaderNoCounts:
		// sver and blobid prepended, sigRLVersion and n2 omitted
		adj := make([]byte, 0, len(sig)+4)
		adj = append(adj, sig[4:]...)
		return append(adj, make([]byte, 8)...)
	case len(sig) == sigNoHeaderNoCounts:
		// sigRLVersion and n2 omitted
		adj := make([]byte, 0, len(sig)+8)
		adj = append(adj, sig...)
		return append(adj, make([]byte, 8)...)
	case (len(sig)-sigWithHeaderWithCounts)%sigProofEntryLen == 4:
		// sver and blobid prepended
		adj := make([]byte, len(sig)-4)
		copy(adj, sig[4:])
		return adj
	default:
		return sig
	}
}
