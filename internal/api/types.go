// Copyright (c) 2025 Doğan Keleş
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api provides the HTTP client for the CV assistant backend.
package api

// =============================================================================
// REQUEST TYPES
// =============================================================================

// ChatRequest is the request body for the /api/chat endpoint.
type ChatRequest struct {
	Query     string `json:"query"`      // The user's question, exactly as typed
	ProfileID int    `json:"profile_id"` // Which CV profile to answer about
}

// DownloadRequest is the request body for /api/cv/request-download.
type DownloadRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Company   string `json:"company,omitempty"`
	ProfileID int    `json:"profile_id"`
}

// =============================================================================
// RESPONSE TYPES
// =============================================================================

// ChatResponse is the response body from /api/chat.
type ChatResponse struct {
	Response string `json:"response"`           // Assistant answer, may contain URLs
	Language string `json:"language,omitempty"` // Detected query language (e.g. "en", "tr")
}

// DownloadResponse is the response body from /api/cv/request-download.
type DownloadResponse struct {
	Success     bool   `json:"success"`
	DownloadURL string `json:"download_url,omitempty"`
}
