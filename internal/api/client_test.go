// Copyright (c) 2025 Doğan Keleş
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendQuerySuccess(t *testing.T) {
	var got ChatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/chat", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(ChatResponse{Response: "I worked on Go services.", Language: "en"})
	}))
	defer server.Close()

	client := NewClientWithConfig(&ClientConfig{BaseURL: server.URL})
	resp, err := client.SendQuery(context.Background(), "What did you work on?", 1)
	require.NoError(t, err)
	assert.Equal(t, "I worked on Go services.", resp.Response)
	assert.Equal(t, "en", resp.Language)
	assert.Equal(t, "What did you work on?", got.Query)
	assert.Equal(t, 1, got.ProfileID)
}

func TestSendQueryServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClientWithConfig(&ClientConfig{BaseURL: server.URL})
	_, err := client.SendQuery(context.Background(), "hello", 1)
	require.Error(t, err)

	var cerr *ClientError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, ErrTypeProtocol, cerr.Type)
	assert.Equal(t, http.StatusInternalServerError, cerr.Status)
}

func TestSendQueryMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := NewClientWithConfig(&ClientConfig{BaseURL: server.URL})
	_, err := client.SendQuery(context.Background(), "hello", 1)
	require.Error(t, err)

	var cerr *ClientError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, ErrTypeDecode, cerr.Type)
}

func TestSendQueryConnectionRefused(t *testing.T) {
	// Grab a port that is not listening.
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	client := NewClientWithConfig(&ClientConfig{BaseURL: url})
	_, err := client.SendQuery(context.Background(), "hello", 1)
	require.Error(t, err)

	var cerr *ClientError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, ErrTypeTransport, cerr.Type)
	assert.Equal(t, 0, cerr.Status)
}

func TestRequestDownload(t *testing.T) {
	var got DownloadRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/cv/request-download", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(DownloadResponse{Success: true, DownloadURL: "https://example.com/cv.pdf"})
	}))
	defer server.Close()

	client := NewClientWithConfig(&ClientConfig{BaseURL: server.URL})
	resp, err := client.RequestDownload(context.Background(), DownloadRequest{
		Name:      "Ada",
		Email:     "ada@example.com",
		Company:   "Acme",
		ProfileID: 1,
	})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "https://example.com/cv.pdf", resp.DownloadURL)
	assert.Equal(t, "Ada", got.Name)
	assert.Equal(t, 1, got.ProfileID)
}

func TestRequestDownloadRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(DownloadResponse{Success: false})
	}))
	defer server.Close()

	client := NewClientWithConfig(&ClientConfig{BaseURL: server.URL})
	resp, err := client.RequestDownload(context.Background(), DownloadRequest{Name: "Ada", Email: "a@b.c", ProfileID: 1})
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Empty(t, resp.DownloadURL)
}
