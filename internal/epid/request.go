/*
 * Copyright (c) 2025 SECOM CO., LTD. All Rights reserved.
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package epid

import "encoding/json"

// proofRequest is the request body of the online verifier's proof endpoint.
// encoding/json emits []byte as standard base64 with padding, which is the
// encoding the verifier expects for all three fields.
type proofRequest struct {
	GroupID       []byte `json:"groupId"`
	Msg           []byte `json:"msg"`
	EpidSignature []byte `json:"epidSignature"`
}

func encodeProofRequest(groupID, payload, signature []byte) ([]byte, error) {
	return json.Marshal(proofRequest{
		GroupID:       groupID,
		Msg:           payload,
		EpidSignature: signature,
	})
}
