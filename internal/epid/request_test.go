/*
 * Copyright (c) 2025 SECOM CO., LTD. All Rights reserved.
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package epid

import (
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeProofRequest_RoundTrip(t *testing.T) {
	groupID := []byte{0x00, 0x01, 0x02, 0x03}
	payload := []byte("the signed payload")
	signature := []byte{0xde, 0xad, 0xbe, 0xef, 0xff}

	body, err := encodeProofRequest(groupID, payload, signature)
	require.NoError(t, err)

	var fields map[string]string
	require.NoError(t, json.Unmarshal(body, &fields))
	require.Len(t, fields, 3)

	for key, want := range map[string][]byte{
		"groupId":       groupID,
		"msg":           payload,
		"epidSignature": signature,
	} {
		got, err := base64.StdEncoding.DecodeString(fields[key])
		require.NoError(t, err, "field %s", key)
		assert.Equal(t, want, got, "field %s", key)
	}
}
