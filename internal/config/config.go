package config

import (
	"log"
	"time"
)

// EpidConfig captures the tunables required to start the EPID adapter server.
type EpidConfig struct {
	Addr                string
	DBPath              string
	Logger              *log.Logger
	VerifierBaseURL     string
	VerifierContentType string
	VerifierInsecureTLS bool
	VerifierTimeout     time.Duration
}

// EpidOnlineConfig configures the HTTP client for the EPID online
// verification service.
type EpidOnlineConfig struct {
	BaseURL     string
	ContentType string
	InsecureTLS bool
	Timeout     time.Duration
	Logger      *log.Logger
}
