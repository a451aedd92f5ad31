// Copyright (c) 2025 Doğan Keleş
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dogankeles/cvchat/internal/api"
	"github.com/dogankeles/cvchat/internal/linkfmt"
	"github.com/dogankeles/cvchat/internal/locale"
	"github.com/dogankeles/cvchat/internal/model"
	"github.com/dogankeles/cvchat/internal/ui/styles"
)

// fakeSender returns a scripted response or error.
type fakeSender struct {
	resp  *api.ChatResponse
	err   error
	panic bool

	gotQuery   string
	gotProfile int
}

func (f *fakeSender) SendQuery(ctx context.Context, query string, profileID int) (*api.ChatResponse, error) {
	f.gotQuery = query
	f.gotProfile = profileID
	if f.panic {
		panic("sender exploded")
	}
	return f.resp, f.err
}

func newTestModel(sender QuerySender) Model {
	m := New(Options{
		Sender:    sender,
		ProfileID: 1,
		Timeout:   time.Second,
		Theme:     styles.NewTheme(true),
		Strings:   locale.English,
		Formatter: linkfmt.New("https://dogankeles.dev", locale.English.DownloadLinkLabel),
	})
	m, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return m
}

func pressEnter(m Model) (Model, tea.Cmd) {
	return m.Update(tea.KeyMsg{Type: tea.KeyEnter})
}

func TestSubmitAppendsUserMessageAndSetsPending(t *testing.T) {
	sender := &fakeSender{resp: &api.ChatResponse{Response: "answer"}}
	m := newTestModel(sender)

	m.input.SetValue("  What are your skills?  ")
	m, cmd := pressEnter(m)

	conv := m.Conversation()
	if !conv.Pending {
		t.Error("Pending = false after submit, want true")
	}
	if conv.MessageCount() != 2 {
		t.Fatalf("MessageCount() = %d, want 2 (welcome + user)", conv.MessageCount())
	}
	last := conv.LastMessage()
	if last.Role != model.RoleUser {
		t.Errorf("last role = %v, want user", last.Role)
	}
	if last.Text != "  What are your skills?  " {
		t.Errorf("user text = %q, want original input preserved", last.Text)
	}
	if m.input.Value() != "" {
		t.Errorf("input not cleared after submit: %q", m.input.Value())
	}
	if cmd == nil {
		t.Error("submit returned nil command, want query command")
	}
}

func TestEmptySubmitIsNoOp(t *testing.T) {
	sender := &fakeSender{resp: &api.ChatResponse{Response: "answer"}}
	m := newTestModel(sender)

	for _, input := range []string{"", "   ", "\t\n"} {
		m.input.SetValue(input)
		var cmd tea.Cmd
		m, cmd = pressEnter(m)

		if m.Conversation().Pending {
			t.Errorf("input %q: Pending = true, want false", input)
		}
		if m.Conversation().MessageCount() != 1 {
			t.Errorf("input %q: MessageCount() = %d, want 1", input, m.Conversation().MessageCount())
		}
		if cmd != nil {
			t.Errorf("input %q: got a command, want nil", input)
		}
	}
}

func TestSubmitWhilePendingRejected(t *testing.T) {
	sender := &fakeSender{resp: &api.ChatResponse{Response: "answer"}}
	m := newTestModel(sender)

	m.input.SetValue("first")
	m, _ = pressEnter(m)

	m.input.SetValue("second")
	m, cmd := pressEnter(m)

	if m.Conversation().MessageCount() != 2 {
		t.Errorf("MessageCount() = %d, want 2 (second submit rejected)", m.Conversation().MessageCount())
	}
	if cmd != nil {
		t.Error("rejected submit produced a command")
	}
}

func TestSuccessfulQueryResolves(t *testing.T) {
	sender := &fakeSender{resp: &api.ChatResponse{Response: "I build Go services."}}
	m := newTestModel(sender)

	m.input.SetValue("what do you do?")
	m, cmd := pressEnter(m)

	result := runQueryCmd(t, cmd)
	m, _ = m.Update(result)

	conv := m.Conversation()
	if conv.Pending {
		t.Error("Pending = true after resolution")
	}
	if conv.MessageCount() != 3 {
		t.Fatalf("MessageCount() = %d, want 3", conv.MessageCount())
	}
	last := conv.LastMessage()
	if last.Role != model.RoleAssistant || last.Text != "I build Go services." {
		t.Errorf("last message = %v %q", last.Role, last.Text)
	}
	if conv.HasError() {
		t.Error("HasError() = true after success")
	}
	if sender.gotQuery != "what do you do?" || sender.gotProfile != 1 {
		t.Errorf("sender saw query=%q profile=%d", sender.gotQuery, sender.gotProfile)
	}
}

func TestFailedQueryShowsErrorBubbleAndBanner(t *testing.T) {
	sender := &fakeSender{err: errors.New("connection refused")}
	m := newTestModel(sender)

	m.input.SetValue("hello")
	m, cmd := pressEnter(m)

	result := runQueryCmd(t, cmd)
	m, _ = m.Update(result)

	conv := m.Conversation()
	if conv.Pending {
		t.Error("Pending = true after failure resolution")
	}
	last := conv.LastMessage()
	if last.Role != model.RoleError {
		t.Errorf("last role = %v, want error", last.Role)
	}
	if last.Text != locale.English.ErrorBubble {
		t.Errorf("error bubble = %q", last.Text)
	}
	if conv.LastError != locale.English.ChatError {
		t.Errorf("LastError = %q, want %q", conv.LastError, locale.English.ChatError)
	}
	if !m.banner.Visible() {
		t.Error("banner hidden after failure")
	}
}

func TestResubmitAfterFailureClearsError(t *testing.T) {
	sender := &fakeSender{err: errors.New("boom")}
	m := newTestModel(sender)

	m.input.SetValue("hello")
	m, cmd := pressEnter(m)
	m, _ = m.Update(runQueryCmd(t, cmd))

	sender.err = nil
	sender.resp = &api.ChatResponse{Response: "recovered"}

	m.input.SetValue("again")
	m, cmd = pressEnter(m)
	if m.Conversation().LastError != "" {
		t.Error("LastError not cleared on resubmit")
	}
	if m.banner.Visible() {
		t.Error("banner still visible after resubmit")
	}

	m, _ = m.Update(runQueryCmd(t, cmd))
	if m.Conversation().LastMessage().Text != "recovered" {
		t.Errorf("last message = %q, want recovered answer", m.Conversation().LastMessage().Text)
	}
}

func TestSendQueryCmdRecoversFromPanic(t *testing.T) {
	sender := &fakeSender{panic: true}
	cmd := SendQueryCmd(sender, "msg_1", "hello", 1, time.Second)

	msg := cmd()
	result, ok := msg.(QueryResultMsg)
	if !ok {
		t.Fatalf("cmd returned %T, want QueryResultMsg", msg)
	}
	if result.Err == nil {
		t.Error("panicking sender produced nil error")
	}
	if result.MessageID != "msg_1" {
		t.Errorf("MessageID = %q", result.MessageID)
	}
}

// runQueryCmd executes the batch returned by submit and extracts the
// query result message.
func runQueryCmd(t *testing.T, cmd tea.Cmd) QueryResultMsg {
	t.Helper()
	if cmd == nil {
		t.Fatal("nil command")
	}
	if result, ok := findQueryResult(cmd()); ok {
		return result
	}
	t.Fatal("no QueryResultMsg produced by command")
	return QueryResultMsg{}
}

// findQueryResult digs through possible batch messages for the result.
func findQueryResult(msg tea.Msg) (QueryResultMsg, bool) {
	switch msg := msg.(type) {
	case QueryResultMsg:
		return msg, true
	case tea.BatchMsg:
		for _, c := range msg {
			if c == nil {
				continue
			}
			if result, ok := findQueryResult(c()); ok {
				return result, true
			}
		}
	}
	return QueryResultMsg{}, false
}
