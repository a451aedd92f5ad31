// Copyright (c) 2025 Doğan Keleş
// SPDX-License-Identifier: AGPL-3.0-or-later

package diag

import (
	"path/filepath"
	"testing"
	"time"
)

func TestJournalRecordAndRecent(t *testing.T) {
	j, err := Open(filepath.Join(t.TempDir(), "diag.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer j.Close()

	base := time.Now().Add(-time.Minute)
	entries := []Entry{
		{RequestID: "req-1", Flow: "chat", Outcome: "ok", HTTPStatus: 200, Duration: 350 * time.Millisecond, CreatedAt: base},
		{RequestID: "req-2", Flow: "chat", Outcome: "error", Cause: "transport", Duration: 20 * time.Millisecond, CreatedAt: base.Add(time.Second)},
		{RequestID: "req-3", Flow: "download", Outcome: "error", Cause: "protocol", HTTPStatus: 500, Duration: 90 * time.Millisecond, CreatedAt: base.Add(2 * time.Second)},
	}
	for _, e := range entries {
		if err := j.Record(e); err != nil {
			t.Fatalf("Record(%s) error = %v", e.RequestID, err)
		}
	}

	got, err := j.Recent(10)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("Recent() returned %d entries, want 3", len(got))
	}

	// Newest first.
	if got[0].RequestID != "req-3" || got[2].RequestID != "req-1" {
		t.Errorf("Recent() order = [%s %s %s], want newest first", got[0].RequestID, got[1].RequestID, got[2].RequestID)
	}
	if got[0].Cause != "protocol" || got[0].HTTPStatus != 500 {
		t.Errorf("entry = %+v, want cause=protocol status=500", got[0])
	}
	if got[0].Duration != 90*time.Millisecond {
		t.Errorf("Duration = %v, want 90ms", got[0].Duration)
	}
}

func TestJournalRecentLimit(t *testing.T) {
	j, err := Open(filepath.Join(t.TempDir(), "diag.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer j.Close()

	base := time.Now()
	for i := 0; i < 5; i++ {
		e := Entry{
			RequestID: "req-" + string(rune('a'+i)),
			Flow:      "chat",
			Outcome:   "ok",
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}
		if err := j.Record(e); err != nil {
			t.Fatalf("Record() error = %v", err)
		}
	}

	got, err := j.Recent(2)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Recent(2) returned %d entries, want 2", len(got))
	}
}
