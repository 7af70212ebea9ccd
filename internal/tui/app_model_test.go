package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/invest-portal/internal/adapter"
	"github.com/MKhiriev/invest-portal/internal/logger"
	"github.com/MKhiriev/invest-portal/internal/mock"
	"github.com/MKhiriev/invest-portal/internal/service"
	"github.com/MKhiriev/invest-portal/models"
)

func newTestModel(t *testing.T) (appModel, *mock.MockServerAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)

	services := service.NewClientServices(mockAdapter, logger.Nop())
	m := newAppModel(context.Background(), services, models.NewAppBuildInfo("0.4.0", "2026-10-01", "abc123"))
	return m, mockAdapter
}

func inboxModel(t *testing.T, items ...models.ContactMessage) (appModel, *mock.MockServerAdapter) {
	t.Helper()
	m, mockAdapter := newTestModel(t)
	m.user = models.User{ID: 1, Username: "admin", IsAdmin: true}
	m.currentScreen = screenList
	m.list.items = items
	return m, mockAdapter
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m appModel, msg tea.Msg) (appModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(appModel)
	require.True(t, ok)
	return model, cmd
}

func typeText(t *testing.T, m appModel, text string) appModel {
	t.Helper()
	for _, r := range text {
		m, _ = update(t, m, keyRunes(string(r)))
	}
	return m
}

// execCmd runs cmd and every command of a batch. Timer based commands must
// not be passed here.
func execCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, execCmd(c)...)
		}
		return msgs
	}
	return []tea.Msg{msg}
}

func findMsg[T any](t *testing.T, msgs []tea.Msg) T {
	t.Helper()
	for _, msg := range msgs {
		if found, ok := msg.(T); ok {
			return found
		}
	}
	var zero T
	t.Fatalf("message %T not produced, got %v", zero, msgs)
	return zero
}

func ptr[T any](v T) *T {
	return &v
}

func sampleMessages() []models.ContactMessage {
	date := time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)
	return []models.ContactMessage{
		{ID: 2, Name: "Ann Lee", Email: "ann@example.com", Subject: ptr("Partnership"), Message: "Let's talk", Date: &date},
		{ID: 1, Name: "Bob", Email: "bob@example.com", Message: "Hello there", IsRead: true, Date: &date},
	}
}

// ── login ────────────────────────────────────────────────────────────────────

func TestAppModel_InitLoadsServerVersion(t *testing.T) {
	m, mockAdapter := newTestModel(t)
	mockAdapter.EXPECT().ServerVersion(gomock.Any()).Return("1.2.3", nil)

	msg := findMsg[versionLoadedMsg](t, execCmd(m.Init()))
	m, _ = update(t, m, msg)

	assert.Equal(t, "1.2.3", m.serverVersion)
}

func TestAppModel_LoginRequiresBothFields(t *testing.T) {
	m, _ := newTestModel(t)
	m = typeText(t, m, "admin")

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.True(t, m.showError)
	assert.Contains(t, m.View(), "Username and password are required")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.showError)
}

func TestAppModel_LoginAndLoadInbox(t *testing.T) {
	m, mockAdapter := newTestModel(t)

	gomock.InOrder(
		mockAdapter.EXPECT().
			Login(gomock.Any(), models.Credentials{Username: "admin", Password: "secret"}).
			Return(models.User{ID: 1, Username: "admin", IsAdmin: true}, nil),
		mockAdapter.EXPECT().ListContactMessages(gomock.Any()).Return(sampleMessages(), nil),
	)

	m = typeText(t, m, "admin")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(t, m, "secret")
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.True(t, m.login.submitting)

	m, cmd = update(t, m, findMsg[loginDoneMsg](t, execCmd(cmd)))
	assert.Equal(t, screenList, m.currentScreen)
	assert.True(t, m.list.loading)

	m, _ = update(t, m, findMsg[listLoadedMsg](t, execCmd(cmd)))
	assert.False(t, m.list.loading)
	require.Len(t, m.list.items, 2)

	view := m.View()
	assert.Contains(t, view, "CONTACT MESSAGES")
	assert.Contains(t, view, "2 messages, 1 unread")
	assert.Contains(t, view, "●")
	assert.Contains(t, view, "Partnership")
	assert.Contains(t, view, "Hello there")
}

func TestAppModel_LoginRejectedForNonAdmin(t *testing.T) {
	m, mockAdapter := newTestModel(t)

	gomock.InOrder(
		mockAdapter.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{ID: 5, Username: "bob"}, nil),
		mockAdapter.EXPECT().SetToken(""),
	)

	m = typeText(t, m, "bob")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(t, m, "secret")
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m, _ = update(t, m, findMsg[loginDoneMsg](t, execCmd(cmd)))

	assert.Equal(t, screenLogin, m.currentScreen)
	assert.False(t, m.login.submitting)
	assert.True(t, m.showError)
	assert.Equal(t, service.ErrAdminRequired.Error(), m.errorOverlay.message)

	username, password := m.login.values()
	assert.Equal(t, "bob", username)
	assert.Empty(t, password)
	assert.Equal(t, 1, m.login.focus)
}

func TestAppModel_LoginServerUnavailable(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = update(t, m, loginDoneMsg{err: errors.New("login request: dial tcp 127.0.0.1:8080: connection refused")})

	assert.Equal(t, "Network is down or the portal API is unavailable", m.errorOverlay.message)
}

// ── inbox ────────────────────────────────────────────────────────────────────

func TestAppModel_NavigateAndOpenDetail(t *testing.T) {
	m, _ := inboxModel(t, sampleMessages()...)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.list.idx)

	m, _ = update(t, m, keyRunes("j"))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.list.idx)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, screenDetail, m.currentScreen)
	assert.Equal(t, int64(1), m.detail.message.ID)

	view := m.View()
	assert.Contains(t, view, "MESSAGE #1")
	assert.Contains(t, view, "Bob <bob@example.com>")
	assert.Contains(t, view, "Subject:  -")
	assert.Contains(t, view, "m: mark unread")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, screenList, m.currentScreen)
}

func TestAppModel_EnterOnEmptyInbox(t *testing.T) {
	m, _ := inboxModel(t)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.Equal(t, screenList, m.currentScreen)
	assert.Contains(t, m.View(), "Inbox is empty")
}

func TestAppModel_ToggleRead(t *testing.T) {
	m, mockAdapter := inboxModel(t, sampleMessages()...)

	mockAdapter.EXPECT().SetContactMessageRead(gomock.Any(), int64(2), true).
		DoAndReturn(func(_ context.Context, id int64, isRead bool) (models.ContactMessage, error) {
			updated := sampleMessages()[0]
			updated.IsRead = isRead
			return updated, nil
		})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, cmd := update(t, m, keyRunes("m"))
	require.NotNil(t, cmd)

	m, cmd = update(t, m, findMsg[messageUpdatedMsg](t, execCmd(cmd)))
	assert.NotNil(t, cmd)

	assert.True(t, m.detail.message.IsRead)
	assert.True(t, m.list.items[0].IsRead)
	assert.Equal(t, "Marked as read", m.detail.status)
	assert.Equal(t, 0, m.list.unread())

	m, _ = update(t, m, clearStatusMsg{})
	assert.Empty(t, m.detail.status)
}

func TestAppModel_ToggleReadNotFound(t *testing.T) {
	m, mockAdapter := inboxModel(t, sampleMessages()...)

	mockAdapter.EXPECT().SetContactMessageRead(gomock.Any(), int64(2), true).
		Return(models.ContactMessage{}, fmt.Errorf("%w: message not found", adapter.ErrNotFound))

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	_, cmd := update(t, m, keyRunes("m"))
	m, _ = update(t, m, findMsg[messageUpdatedMsg](t, execCmd(cmd)))

	assert.True(t, m.showError)
	assert.Contains(t, m.errorOverlay.message, "message not found")
	assert.Equal(t, screenDetail, m.currentScreen)
}

func TestAppModel_DeleteAsksForConfirmation(t *testing.T) {
	m, mockAdapter := inboxModel(t, sampleMessages()...)
	mockAdapter.EXPECT().DeleteContactMessage(gomock.Any(), int64(2)).Return(nil)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m, _ = update(t, m, keyRunes("d"))
	assert.True(t, m.showConfirm)
	assert.Contains(t, m.View(), `Delete message from "Ann Lee"?`)

	m, cmd := update(t, m, keyRunes("n"))
	assert.Nil(t, cmd)
	assert.False(t, m.showConfirm)
	assert.Zero(t, m.pendingDelete)

	m, _ = update(t, m, keyRunes("d"))
	m, cmd = update(t, m, keyRunes("y"))
	require.NotNil(t, cmd)

	m, _ = update(t, m, findMsg[messageDeletedMsg](t, execCmd(cmd)))

	assert.Equal(t, screenList, m.currentScreen)
	require.Len(t, m.list.items, 1)
	assert.Equal(t, int64(1), m.list.items[0].ID)
	assert.Equal(t, "Message #2 deleted", m.list.status)
}

func TestAppModel_CopyEmail(t *testing.T) {
	var copied string
	original := writeClipboard
	writeClipboard = func(text string) error {
		copied = text
		return nil
	}
	t.Cleanup(func() { writeClipboard = original })

	m, _ := inboxModel(t, sampleMessages()...)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m, cmd := update(t, m, keyRunes("c"))
	m, _ = update(t, m, findMsg[copiedMsg](t, execCmd(cmd)))

	assert.Equal(t, "ann@example.com", copied)
	assert.Equal(t, "Email copied!", m.detail.status)
}

func TestAppModel_CopyEmailFails(t *testing.T) {
	original := writeClipboard
	writeClipboard = func(string) error { return errors.New("no clipboard utility") }
	t.Cleanup(func() { writeClipboard = original })

	m, _ := inboxModel(t, sampleMessages()...)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	_, cmd := update(t, m, keyRunes("c"))
	m, _ = update(t, m, findMsg[copiedMsg](t, execCmd(cmd)))

	assert.True(t, m.showError)
	assert.Equal(t, "copy to clipboard: no clipboard utility", m.errorOverlay.message)
}

func TestAppModel_RefreshIgnoredWhileLoading(t *testing.T) {
	m, mockAdapter := inboxModel(t)
	mockAdapter.EXPECT().ListContactMessages(gomock.Any()).Return(sampleMessages(), nil)

	m, cmd := update(t, m, keyRunes("r"))
	require.NotNil(t, cmd)
	assert.True(t, m.list.loading)

	_, again := update(t, m, keyRunes("r"))
	assert.Nil(t, again)

	m, _ = update(t, m, findMsg[listLoadedMsg](t, execCmd(cmd)))
	assert.Len(t, m.list.items, 2)
}

func TestAppModel_SessionExpiredReturnsToLogin(t *testing.T) {
	m, mockAdapter := inboxModel(t, sampleMessages()...)
	mockAdapter.EXPECT().SetToken("")

	m, _ = update(t, m, listLoadedMsg{err: fmt.Errorf("list contact messages: %w", service.ErrSessionExpired)})

	assert.Equal(t, screenLogin, m.currentScreen)
	assert.Empty(t, m.list.items)
	assert.Zero(t, m.user)
	assert.True(t, m.showError)
	assert.Contains(t, m.errorOverlay.message, service.ErrSessionExpired.Error())
}

func TestAppModel_Logout(t *testing.T) {
	m, mockAdapter := inboxModel(t, sampleMessages()...)
	mockAdapter.EXPECT().SetToken("")

	m, _ = update(t, m, keyRunes("l"))

	assert.Equal(t, screenLogin, m.currentScreen)
	assert.Empty(t, m.list.items)
	assert.Contains(t, m.View(), "SIGN IN")
}

func TestAppModel_BuildInfoWindow(t *testing.T) {
	m, _ := inboxModel(t)
	m, _ = update(t, m, versionLoadedMsg{version: "1.2.3"})

	m, _ = update(t, m, keyRunes("v"))
	require.True(t, m.showBuildInfo)

	view := m.View()
	assert.Contains(t, view, "Version:     0.4.0")
	assert.Contains(t, view, "Commit:      abc123")
	assert.Contains(t, view, "API version: 1.2.3")

	// list keys are swallowed while the window is open
	m, cmd := update(t, m, keyRunes("q"))
	assert.Nil(t, cmd)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.showBuildInfo)
}

func TestAppModel_Quit(t *testing.T) {
	t.Run("q on the inbox", func(t *testing.T) {
		m, _ := inboxModel(t)
		m, cmd := update(t, m, keyRunes("q"))

		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
		assert.ErrorIs(t, m.err, ErrUserQuit)
	})

	t.Run("q is typed on the login form", func(t *testing.T) {
		m, _ := newTestModel(t)
		m = typeText(t, m, "q")

		username, _ := m.login.values()
		assert.Equal(t, "q", username)
		assert.NoError(t, m.err)
	})

	t.Run("ctrl+c everywhere", func(t *testing.T) {
		m, _ := newTestModel(t)
		m.showError = true
		m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})

		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
		assert.ErrorIs(t, m.err, ErrUserQuit)
	})
}
