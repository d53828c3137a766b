/*
 * Copyright (c) 2025 SECOM CO., LTD. All Rights reserved.
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package epid

// SgType identifies the device attestation signature scheme, per the FDO
// DeviceSgType registry.
//
//	DeviceSgType /= (
//	    StEPID10: 90,  ;; Intel EPID 1.0 signature
//	    StEPID11: 91   ;; Intel EPID 1.1 signature
//	)
type SgType int64

const (
	SgEPID10 SgType = 90
	SgEPID11 SgType = 91
)

// Supported reports whether the scheme can be submitted to the online
// verifier.
func (t SgType) Supported() bool {
	return t == SgEPID10 || t == SgEPID11
}

// SigInfo carries the signature scheme and the EPID group the device claims
// membership of.
//
//	SigInfo = [
//	    sgType: DeviceSgType,
//	    Info: bstr  ;; EPID group id
//	]
type SigInfo struct {
	_    struct{} `cbor:",toarray"`
	Type SgType
	Info []byte
}
