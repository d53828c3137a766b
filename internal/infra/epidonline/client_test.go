/*
 * Copyright (c) 2025 SECOM CO., LTD. All Rights reserved.
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package epidonline

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kentakayama/epid-over-http/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProofClient_PostProof(t *testing.T) {
	var (
		gotMethod      string
		gotPath        string
		gotContentType string
		gotBody        []byte
	)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusForbidden)
	}))
	defer ts.Close()

	client, err := NewProofClient(config.EpidOnlineConfig{BaseURL: ts.URL})
	require.NoError(t, err)
	require.NotNil(t, client)

	body := []byte(`{"groupId":"AAECAw=="}`)
	status, err := client.PostProof(context.Background(), "/v1/epid11/proof", body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/v1/epid11/proof", gotPath)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, body, gotBody)
}

func TestProofClient_PostProof_Unreachable(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := ts.URL
	ts.Close()

	client, err := NewProofClient(config.EpidOnlineConfig{BaseURL: baseURL})
	require.NoError(t, err)

	_, err = client.PostProof(context.Background(), "/v1/epid11/proof", []byte("{}"))
	assert.Error(t, err)
}

func TestNewProofClient_NoBaseURL(t *testing.T) {
	client, err := NewProofClient(config.EpidOnlineConfig{})
	require.NoError(t, err)
	assert.Nil(t, client)
}

func TestNewProofClient_InvalidBaseURL(t *testing.T) {
	_, err := NewProofClient(config.EpidOnlineConfig{BaseURL: "http://exa mple.com"})
	assert.Error(t, err)
}
