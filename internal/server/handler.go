/*
 * Copyright (c) 2025 SECOM CO., LTD. All Rights reserved.
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package server

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/kentakayama/epid-over-http/internal/epid"
)

const (
	maxRequestBodyBytes = 1 << 20 // 1 MiB covers the largest EPID assertions.

	contentTypeAssertion = "application/epid-assertion+cbor"
)

type handler struct {
	verifier *epid.Verifier
	logger   *log.Logger
}

type responseSpec struct {
	status      int
	body        []byte
	contentType string
}

// verifyEnvelope is the request body of /epid/verify.
//
//	VerifyRequest = [
//	    eASigInfo: SigInfo,
//	    signedData: bstr,
//	    assertion: bstr .cbor COSE_Sign1
//	]
type verifyEnvelope struct {
	_          struct{} `cbor:",toarray"`
	SigInfo    epid.SigInfo
	SignedData []byte
	Assertion  []byte
}

func newHandler(verifier *epid.Verifier, logger *log.Logger) (*handler, error) {
	return &handler{
		verifier: verifier,
		logger:   logger,
	}, nil
}

func (h *handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/epid/verify":
		if r.Method != http.MethodPost {
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		h.verifyAssertion(w, r)
		return
	case "/api/manage/verifications":
		if r.Method != http.MethodGet {
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		h.listVerifications(w, r)
		return
	default:
		http.NotFound(w, r)
		return
	}
}

func (h *handler) verifyAssertion(w http.ResponseWriter, r *http.Request) {
	// check the content
	if r.Header.Get("Content-Type") != contentTypeAssertion {
		h.logger.Printf("content type mismatch: expected %v, actual %v", contentTypeAssertion, r.Header.Get("Content-Type"))
		http.Error(w, "This endpoint only accepts Content-Type: "+contentTypeAssertion, http.StatusUnsupportedMediaType)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBodyBytes))
	if err != nil {
		h.logger.Printf("failed reading request body: %v", err)
		http.Error(w, "failed to read request body", http.StatusBadRequest)
		return
	}
	if err := r.Body.Close(); err != nil {
		h.logger.Printf("failed closing request body: %v", err)
		http.Error(w, "failed to close request body", http.StatusBadRequest)
		return
	}

	var env verifyEnvelope
	if err := cbor.Unmarshal(body, &env); err != nil {
		h.logger.Printf("failed to parse verify request: %v", err)
		http.Error(w, "failed to parse verify request", http.StatusBadRequest)
		return
	}

	assertion, err := epid.ParseSignatureAssertion(env.Assertion)
	if err != nil {
		h.logger.Printf("failed to parse signature assertion: %v", err)
		http.Error(w, "failed to parse signature assertion", http.StatusBadRequest)
		return
	}

	outcome, err := h.verifier.Verify(assertion, env.SignedData, &env.SigInfo)
	if err != nil {
		// input-class error, distinct from any verification outcome
		h.logger.Printf("could not attempt verification: %v", err)
		http.Error(w, "could not attempt verification", http.StatusBadRequest)
		return
	}

	respBody, err := json.Marshal(map[string]string{"outcome": outcome.String()})
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	h.writeResponse(w, responseSpec{
		status:      http.StatusOK,
		body:        respBody,
		contentType: "application/json",
	})
}

func (h *handler) listVerifications(w http.ResponseWriter, r *http.Request) {
	recs, err := h.verifier.RecentResults(100)
	if err != nil {
		h.logger.Printf("failed to list verification records: %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	type entry struct {
		ID        int64  `json:"id"`
		GroupID   []byte `json:"groupId"`
		SgType    int64  `json:"sgType"`
		Outcome   string `json:"outcome"`
		CreatedAt string `json:"createdAt"`
	}
	entries := make([]entry, 0, len(recs))
	for _, rec := range recs {
		entries = append(entries, entry{
			ID:        rec.ID,
			GroupID:   rec.GroupID,
			SgType:    rec.SgType,
			Outcome:   rec.Outcome,
			CreatedAt: rec.CreatedAt.Format(time.RFC3339),
		})
	}

	respBody, err := json.Marshal(entries)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	h.writeResponse(w, responseSpec{
		status:      http.StatusOK,
		body:        respBody,
		contentType: "application/json",
	})
}

func (h *handler) writeResponse(w http.ResponseWriter, spec responseSpec) {
	if len(spec.body) > 0 {
		for k, v := range defaultHeaders {
			w.Header().Set(k, v)
		}
		w.Header().Set("Content-Type", spec.contentType)
		w.Header().Set("Content-Length", strconv.Itoa(len(spec.body)))
		w.WriteHeader(spec.status)
		if _, err := w.Write(spec.body); err != nil {
			h.logger.Printf("failed writing response body: %v", err)
		}
		return
	}

	w.WriteHeader(spec.status)
}

var defaultHeaders = map[string]string{
	"Cache-Control":           "no-store",
	"X-Content-Type-Options":  "nosniff",
	"Content-Security-Policy": "default-src 'none'",
	"Referrer-Policy":         "no-referrer",
}
