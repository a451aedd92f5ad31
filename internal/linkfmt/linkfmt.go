// Copyright (c) 2025 Doğan Keleş
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package linkfmt turns raw assistant text into typed spans so the renderer
// can style embedded links and reroute the CV-download link through
// client-side navigation.
package linkfmt

import (
	"net/url"
	"regexp"
	"strings"
)

// DownloadPath is the path of the CV-download view on the site's own origin.
const DownloadPath = "/download-cv"

// urlPattern matches an HTTP/HTTPS scheme followed by a run of
// non-whitespace. The match is greedy up to whitespace: trailing punctuation
// attached to a URL (a period ending a sentence, a closing parenthesis) is
// swept into the link. That matches how responses are produced upstream and
// is kept as-is.
var urlPattern = regexp.MustCompile(`https?://\S+`)

// =============================================================================
// SPAN TYPE
// =============================================================================

// SpanKind discriminates the variants of Span.
type SpanKind int

const (
	// SpanText is a run of plain text.
	SpanText SpanKind = iota
	// SpanLink is an external hyperlink, displayed as the literal URL.
	SpanLink
	// SpanRoute is a link to the site's own CV-download view, rendered as a
	// client-side route transition with a fixed display label.
	SpanRoute
)

// Span is a typed fragment of formatted text. Text always holds the exact
// source substring, so concatenating the Text of every span reconstructs the
// formatter's input with nothing lost or duplicated.
type Span struct {
	Kind    SpanKind
	Text    string // exact source substring
	URL     string // SpanLink and SpanRoute: the matched URL
	Display string // SpanLink: the URL itself; SpanRoute: the fixed label
}

// =============================================================================
// FORMATTER
// =============================================================================

// Formatter classifies URLs found in response text. It is pure: identical
// input yields identical spans, and Format never fails.
type Formatter struct {
	originHost string
	routeLabel string
}

// New creates a Formatter. siteOrigin is the client's own origin (for
// example "https://dogankeles.dev"); URLs on that host pointing at the
// download page become route spans. routeLabel is the fixed display text for
// those spans.
func New(siteOrigin, routeLabel string) *Formatter {
	host := ""
	if u, err := url.Parse(siteOrigin); err == nil {
		host = strings.ToLower(u.Host)
	}
	return &Formatter{
		originHost: host,
		routeLabel: routeLabel,
	}
}

// Format splits text into spans. A string without URLs yields a single text
// span; an empty string yields no spans.
func (f *Formatter) Format(text string) []Span {
	if text == "" {
		return nil
	}

	matches := urlPattern.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return []Span{{Kind: SpanText, Text: text}}
	}

	spans := make([]Span, 0, len(matches)*2+1)
	last := 0
	for _, m := range matches {
		if m[0] > last {
			spans = append(spans, Span{Kind: SpanText, Text: text[last:m[0]]})
		}
		spans = append(spans, f.classify(text[m[0]:m[1]]))
		last = m[1]
	}
	if last < len(text) {
		spans = append(spans, Span{Kind: SpanText, Text: text[last:]})
	}
	return spans
}

// classify decides whether a matched URL is the internal download route or
// an external link.
func (f *Formatter) classify(raw string) Span {
	u, err := url.Parse(raw)
	if err == nil && f.originHost != "" && strings.EqualFold(u.Host, f.originHost) && isDownloadPath(u.Path) {
		return Span{
			Kind:    SpanRoute,
			Text:    raw,
			URL:     raw,
			Display: f.routeLabel,
		}
	}
	return Span{
		Kind:    SpanLink,
		Text:    raw,
		URL:     raw,
		Display: raw,
	}
}

// isDownloadPath reports whether a URL path addresses the download view.
// A trailing slash is tolerated.
func isDownloadPath(path string) bool {
	return path == DownloadPath || path == DownloadPath+"/"
}
