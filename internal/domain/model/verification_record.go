package model

import "time"

// VerificationRecord is one logged EPID verification attempt.
type VerificationRecord struct {
	ID        int64
	GroupID   []byte
	SgType    int64
	Outcome   string
	CreatedAt time.Time
}
