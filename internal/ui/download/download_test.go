// Copyright (c) 2025 Doğan Keleş
// SPDX-License-Identifier: AGPL-3.0-or-later

package download

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dogankeles/cvchat/internal/api"
	"github.com/dogankeles/cvchat/internal/locale"
	"github.com/dogankeles/cvchat/internal/ui/styles"
)

// fakeDownloadSender returns a scripted response or error.
type fakeDownloadSender struct {
	resp *api.DownloadResponse
	err  error

	got api.DownloadRequest
}

func (f *fakeDownloadSender) RequestDownload(ctx context.Context, req api.DownloadRequest) (*api.DownloadResponse, error) {
	f.got = req
	return f.resp, f.err
}

// recordingNavigator captures opened URLs.
type recordingNavigator struct {
	urls []string
}

func (r *recordingNavigator) OpenURL(url string) error {
	r.urls = append(r.urls, url)
	return nil
}

func newTestForm(sender DownloadSender, nav Navigator) Model {
	return New(Options{
		Sender:    sender,
		Navigator: nav,
		ProfileID: 1,
		Timeout:   time.Second,
		Theme:     styles.NewTheme(true),
		Strings:   locale.English,
	})
}

func fill(m Model, name, email, company string) Model {
	m.inputs[fieldName].SetValue(name)
	m.inputs[fieldEmail].SetValue(email)
	m.inputs[fieldCompany].SetValue(company)
	return m
}

func submit(m Model) (Model, tea.Cmd) {
	return m.Update(tea.KeyMsg{Type: tea.KeyEnter})
}

func TestSubmitMovesToSubmitting(t *testing.T) {
	sender := &fakeDownloadSender{resp: &api.DownloadResponse{Success: true}}
	m := newTestForm(sender, &recordingNavigator{})
	m = fill(m, "Ada", "ada@example.com", "Acme")

	m, cmd := submit(m)
	if m.Phase() != PhaseSubmitting {
		t.Errorf("phase = %v, want submitting", m.Phase())
	}
	if cmd == nil {
		t.Fatal("submit returned nil command")
	}
}

func TestSubmitRequiresNameAndEmail(t *testing.T) {
	sender := &fakeDownloadSender{resp: &api.DownloadResponse{Success: true}}

	cases := []struct {
		name, email string
	}{
		{"", ""},
		{"Ada", ""},
		{"", "ada@example.com"},
		{"   ", "ada@example.com"},
	}
	for _, tc := range cases {
		m := newTestForm(sender, &recordingNavigator{})
		m = fill(m, tc.name, tc.email, "")

		m, cmd := submit(m)
		if m.Phase() != PhaseEditing {
			t.Errorf("name=%q email=%q: phase = %v, want editing", tc.name, tc.email, m.Phase())
		}
		if cmd != nil {
			t.Errorf("name=%q email=%q: got a command, want nil", tc.name, tc.email)
		}
	}
}

func TestSuccessOpensDownloadURL(t *testing.T) {
	sender := &fakeDownloadSender{resp: &api.DownloadResponse{
		Success:     true,
		DownloadURL: "https://example.com/cv.pdf",
	}}
	nav := &recordingNavigator{}
	m := newTestForm(sender, nav)
	m = fill(m, "Ada", "ada@example.com", "Acme")

	m, cmd := submit(m)
	m, _ = m.Update(cmd())

	if m.Phase() != PhaseSucceeded {
		t.Errorf("phase = %v, want succeeded", m.Phase())
	}
	if len(nav.urls) != 1 || nav.urls[0] != "https://example.com/cv.pdf" {
		t.Errorf("navigator saw %v", nav.urls)
	}
	if sender.got.Name != "Ada" || sender.got.Email != "ada@example.com" || sender.got.ProfileID != 1 {
		t.Errorf("request = %+v", sender.got)
	}
}

func TestRefusedSubmissionFailsWithRefusedCopy(t *testing.T) {
	sender := &fakeDownloadSender{resp: &api.DownloadResponse{Success: false}}
	nav := &recordingNavigator{}
	m := newTestForm(sender, nav)
	m = fill(m, "Ada", "ada@example.com", "")

	m, cmd := submit(m)
	m, _ = m.Update(cmd())

	if m.Phase() != PhaseFailed {
		t.Errorf("phase = %v, want failed", m.Phase())
	}
	if m.errMsg != locale.English.DownloadRefused {
		t.Errorf("errMsg = %q, want refused copy", m.errMsg)
	}
	if len(nav.urls) != 0 {
		t.Errorf("navigator called on refusal: %v", nav.urls)
	}
}

func TestTransportFailureFailsWithErrorCopy(t *testing.T) {
	sender := &fakeDownloadSender{err: errors.New("connection refused")}
	m := newTestForm(sender, &recordingNavigator{})
	m = fill(m, "Ada", "ada@example.com", "")

	m, cmd := submit(m)
	m, _ = m.Update(cmd())

	if m.Phase() != PhaseFailed {
		t.Errorf("phase = %v, want failed", m.Phase())
	}
	if m.errMsg != locale.English.DownloadError {
		t.Errorf("errMsg = %q, want server error copy", m.errMsg)
	}
}

func TestEditAfterFailureReturnsToEditing(t *testing.T) {
	sender := &fakeDownloadSender{err: errors.New("boom")}
	m := newTestForm(sender, &recordingNavigator{})
	m = fill(m, "Ada", "ada@example.com", "")

	m, cmd := submit(m)
	m, _ = m.Update(cmd())
	if m.Phase() != PhaseFailed {
		t.Fatalf("phase = %v, want failed", m.Phase())
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	if m.Phase() != PhaseEditing {
		t.Errorf("phase after edit = %v, want editing", m.Phase())
	}
	if m.errMsg != "" {
		t.Errorf("errMsg = %q, want cleared", m.errMsg)
	}
}

func TestEnterAfterSuccessIsNoOp(t *testing.T) {
	sender := &fakeDownloadSender{resp: &api.DownloadResponse{
		Success:     true,
		DownloadURL: "https://example.com/cv.pdf",
	}}
	nav := &recordingNavigator{}
	m := newTestForm(sender, nav)
	m = fill(m, "Ada", "ada@example.com", "")

	m, cmd := submit(m)
	m, _ = m.Update(cmd())
	if m.Phase() != PhaseSucceeded {
		t.Fatalf("phase = %v, want succeeded", m.Phase())
	}

	m, cmd = submit(m)
	if m.Phase() != PhaseSucceeded {
		t.Errorf("phase after enter = %v, want still succeeded", m.Phase())
	}
	if cmd != nil {
		t.Error("enter after success produced a command")
	}
	if len(nav.urls) != 1 {
		t.Errorf("navigator calls = %d, want 1", len(nav.urls))
	}
}

func TestEnterInFailedRequiresEditFirst(t *testing.T) {
	sender := &fakeDownloadSender{err: errors.New("boom")}
	m := newTestForm(sender, &recordingNavigator{})
	m = fill(m, "Ada", "ada@example.com", "")

	m, cmd := submit(m)
	m, _ = m.Update(cmd())
	if m.Phase() != PhaseFailed {
		t.Fatalf("phase = %v, want failed", m.Phase())
	}

	m, cmd = submit(m)
	if m.Phase() != PhaseFailed {
		t.Errorf("phase after enter = %v, want still failed", m.Phase())
	}
	if cmd != nil {
		t.Error("enter in failed produced a command")
	}

	// An edit re-arms the form; then enter submits again.
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	sender.err = nil
	sender.resp = &api.DownloadResponse{Success: true}
	m, cmd = submit(m)
	if m.Phase() != PhaseSubmitting {
		t.Errorf("phase after edit+enter = %v, want submitting", m.Phase())
	}
	if cmd == nil {
		t.Error("edit+enter did not produce a command")
	}
}

type failingNavigator struct{}

func (failingNavigator) OpenURL(string) error {
	return errors.New("no opener available")
}

func TestNavigatorFailureKeepsSuccess(t *testing.T) {
	sender := &fakeDownloadSender{resp: &api.DownloadResponse{
		Success:     true,
		DownloadURL: "https://example.com/cv.pdf",
	}}
	m := newTestForm(sender, failingNavigator{})
	m = fill(m, "Ada", "ada@example.com", "")

	m, cmd := submit(m)
	m, _ = m.Update(cmd())
	if m.Phase() != PhaseSucceeded {
		t.Errorf("phase = %v, want succeeded despite failed redirect", m.Phase())
	}
}

func TestEscClosesForm(t *testing.T) {
	sender := &fakeDownloadSender{}
	m := newTestForm(sender, &recordingNavigator{})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("esc returned nil command")
	}
	if _, ok := cmd().(CloseMsg); !ok {
		t.Error("esc did not produce CloseMsg")
	}
}
