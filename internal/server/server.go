/*
 * Copyright (c) 2025 SECOM CO., LTD. All Rights reserved.
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/kentakayama/epid-over-http/internal/config"
	"github.com/kentakayama/epid-over-http/internal/epid"
	"github.com/kentakayama/epid-over-http/internal/infra/epidonline"
)

// Server wires the HTTP listener and request handling stack.
type Server struct {
	cfg     config.EpidConfig
	handler *handler
	http    *http.Server
	logger  *log.Logger
}

// New constructs a Server using the provided configuration.
func New(cfg config.EpidConfig) (*Server, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	proofClient, err := epidonline.NewProofClient(config.EpidOnlineConfig{
		BaseURL:     cfg.VerifierBaseURL,
		ContentType: cfg.VerifierContentType,
		InsecureTLS: cfg.VerifierInsecureTLS,
		Timeout:     cfg.VerifierTimeout,
		Logger:      logger,
	})
	if err != nil {
		return nil, err
	}

	var verifier *epid.Verifier
	if proofClient == nil {
		verifier = epid.NewVerifier(nil, logger)
	} else {
		verifier = epid.NewVerifier(proofClient, logger)
	}
	if cfg.DBPath != "" {
		if err := verifier.InitWithPath(cfg.DBPath); err != nil {
			return nil, err
		}
	}

	h, err := newHandler(verifier, logger)
	if err != nil {
		return nil, err
	}

	httpSrv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &Server{
		cfg:     cfg,
		handler: h,
		http:    httpSrv,
		logger:  logger,
	}, nil
}

// ListenAndServe starts the HTTP server and blocks until it stops.
func (s *Server) ListenAndServe() error {
	s.logger.Printf("Run EPID verifier adapter on %s.", s.http.Addr)

	err := s.http.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown gracefully takes down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
