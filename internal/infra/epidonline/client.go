/*
 * Copyright (c) 2025 SECOM CO., LTD. All Rights reserved.
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package epidonline

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/kentakayama/epid-over-http/internal/config"
)

const (
	defaultProofTimeout     = 60 * time.Second
	defaultProofUserAgent   = "epid-over-http/proof-client"
	defaultProofContentType = "application/json"
)

type ProofClient struct {
	baseURL     *url.URL
	httpClient  *http.Client
	contentType string
	timeout     time.Duration
	logger      *log.Logger
}

func NewProofClient(cfg config.EpidOnlineConfig) (*ProofClient, error) {
	if cfg.BaseURL == "" {
		return nil, nil
	}

	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse EPID verifier URL: %w", err)
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultProofTimeout
	}

	transport := &http.Transport{}
	if base.Scheme == "https" {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: cfg.InsecureTLS}
	}

	httpClient := &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	return &ProofClient{
		baseURL:     base,
		httpClient:  httpClient,
		contentType: cfg.ContentType,
		timeout:     timeout,
		logger:      logger,
	}, nil
}

// PostProof submits the proof request body and returns the verifier's HTTP
// status code. The response body carries nothing the adapter uses, so it is
// drained and discarded.
func (c *ProofClient) PostProof(ctx context.Context, path string, body []byte) (int, error) {
	proofURL, err := c.baseURL.Parse(path)
	if err != nil {
		return 0, fmt.Errorf("build proof URL: %w", err)
	}

	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, proofURL.String(), bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("create proof request: %w", err)
	}

	contentType := c.contentType
	if contentType == "" {
		contentType = defaultProofContentType
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "*/*")
	req.Header.Set("User-Agent", defaultProofUserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("perform proof request: %w", err)
	}
	defer resp.Body.Close()

	if _, err := io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<20)); err != nil {
		c.logger.Printf("discard proof response body: %v", err)
	}

	return resp.StatusCode, nil
}
