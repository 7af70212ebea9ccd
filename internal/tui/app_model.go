package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/invest-portal/internal/service"
	"github.com/MKhiriev/invest-portal/models"
)

type screen int

const (
	screenLogin screen = iota
	screenList
	screenDetail
)

const statusDuration = 2 * time.Second

// writeClipboard is replaced in tests; headless machines have no clipboard.
var writeClipboard = clipboard.WriteAll

type appModel struct {
	ctx           context.Context
	services      *service.ClientServices
	buildInfo     models.AppBuildInfo
	currentScreen screen

	login  loginModel
	list   listModel
	detail detailModel

	user          models.User
	serverVersion string

	err           error
	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	pendingDelete int64
	showBuildInfo bool
}

func newAppModel(ctx context.Context, services *service.ClientServices, buildInfo models.AppBuildInfo) appModel {
	return appModel{
		ctx:           ctx,
		services:      services,
		buildInfo:     buildInfo,
		currentScreen: screenLogin,
		login:         newLoginModel(),
		list:          newListModel(),
	}
}

func (m appModel) Init() tea.Cmd {
	return m.cmdLoadVersion()
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.forceQuit) {
			m.err = ErrUserQuit
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				if m.pendingDelete == 0 {
					return m, nil
				}
				return m, m.cmdDeleteMessage(m.pendingDelete)
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.pendingDelete = 0
			}
			return m, nil
		}
		if m.showBuildInfo {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.buildInfo) {
				m.showBuildInfo = false
			}
			return m, nil
		}
	case loginDoneMsg:
		m.login.submitting = false
		if msg.err != nil {
			m.login = m.login.reset()
			m.showErrorf(humanizeServerUnavailableError(msg.err))
			return m, nil
		}
		m.user = msg.user
		m.currentScreen = screenList
		m.list.loading = true
		return m, tea.Batch(m.cmdLoadList(), m.list.spinner.Tick)
	case versionLoadedMsg:
		if msg.err == nil {
			m.serverVersion = msg.version
		}
		return m, nil
	case listLoadedMsg:
		m.list.loading = false
		if msg.err != nil {
			return m.handleServiceError(msg.err)
		}
		m.list.items = msg.items
		m.list = m.list.clamp()
		return m, nil
	case messageUpdatedMsg:
		if msg.err != nil {
			return m.handleServiceError(msg.err)
		}
		m.list = m.list.replace(msg.message)
		if m.currentScreen == screenDetail && m.detail.message.ID == msg.message.ID {
			m.detail.message = msg.message
			m.detail.status = "Marked as " + readStatus(msg.message.IsRead)
			return m, cmdClearStatus()
		}
		return m, nil
	case messageDeletedMsg:
		m.pendingDelete = 0
		if msg.err != nil {
			return m.handleServiceError(msg.err)
		}
		m.list = m.list.remove(msg.id)
		m.list.status = fmt.Sprintf("Message #%d deleted", msg.id)
		m.currentScreen = screenList
		return m, cmdClearStatus()
	case copiedMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.detail.status = "Email copied!"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.detail.status = ""
		m.list.status = ""
		return m, nil
	case spinner.TickMsg:
		if !m.list.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.list.spinner, cmd = m.list.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenLogin:
		return m.updateLogin(msg)
	case screenList:
		return m.updateList(msg)
	case screenDetail:
		return m.updateDetail(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo, m.serverVersion))
	}

	var body string
	switch m.currentScreen {
	case screenLogin:
		body = m.login.View()
	case screenList:
		body = m.list.View(m.user)
	case screenDetail:
		body = m.detail.View()
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

// handleServiceError sends the user back to the login form when the API no
// longer accepts the token. Other errors are shown in place.
func (m appModel) handleServiceError(err error) (tea.Model, tea.Cmd) {
	if errors.Is(err, service.ErrSessionExpired) {
		m.services.AuthService.Logout()
		m.user = models.User{}
		m.list = newListModel()
		m.currentScreen = screenLogin
		m.login = m.login.reset()
	}

	m.showErrorf(humanizeServerUnavailableError(err))
	return m, nil
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.tab):
			m.login = focusNext(m.login)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.login = focusPrev(m.login)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.login.submitting {
				return m, nil
			}
			username, password := m.login.values()
			if username == "" || password == "" {
				m.showErrorf("Username and password are required")
				return m, nil
			}
			m.login.submitting = true
			return m, m.cmdLogin(username, password)
		}
	}

	var cmd tea.Cmd
	m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	case key.Matches(keyMsg, keys.up):
		if m.list.idx > 0 {
			m.list.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.list.idx < len(m.list.items)-1 {
			m.list.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		message, ok := m.list.current()
		if !ok {
			return m, nil
		}
		m.detail = detailModel{message: message}
		m.currentScreen = screenDetail
	case key.Matches(keyMsg, keys.refresh):
		if m.list.loading {
			return m, nil
		}
		m.list.loading = true
		return m, tea.Batch(m.cmdLoadList(), m.list.spinner.Tick)
	case key.Matches(keyMsg, keys.buildInfo):
		m.showBuildInfo = true
	case key.Matches(keyMsg, keys.logout):
		m.services.AuthService.Logout()
		m.user = models.User{}
		m.list = newListModel()
		m.login = m.login.reset()
		m.currentScreen = screenLogin
	}
	return m, nil
}

func (m appModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	case key.Matches(keyMsg, keys.esc):
		m.detail = detailModel{}
		m.currentScreen = screenList
	case key.Matches(keyMsg, keys.toggleRead):
		return m, m.cmdSetRead(m.detail.message.ID, !m.detail.message.IsRead)
	case key.Matches(keyMsg, keys.delete):
		m.pendingDelete = m.detail.message.ID
		m.confirm = confirmModel{message: m.detail.message.Name}
		m.showConfirm = true
	case key.Matches(keyMsg, keys.copy):
		return m, cmdCopyToClipboard(m.detail.message.Email)
	}
	return m, nil
}

func (m appModel) cmdLogin(username, password string) tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		user, err := auth.Login(ctx, username, password)
		return loginDoneMsg{user: user, err: err}
	}
}

func (m appModel) cmdLoadVersion() tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		version, err := auth.ServerVersion(ctx)
		return versionLoadedMsg{version: version, err: err}
	}
}

func (m appModel) cmdLoadList() tea.Cmd {
	ctx := m.ctx
	inbox := m.services.InboxService
	return func() tea.Msg {
		items, err := inbox.Messages(ctx)
		return listLoadedMsg{items: items, err: err}
	}
}

func (m appModel) cmdSetRead(id int64, isRead bool) tea.Cmd {
	ctx := m.ctx
	inbox := m.services.InboxService
	return func() tea.Msg {
		message, err := inbox.SetRead(ctx, id, isRead)
		return messageUpdatedMsg{message: message, err: err}
	}
}

func (m appModel) cmdDeleteMessage(id int64) tea.Cmd {
	ctx := m.ctx
	inbox := m.services.InboxService
	return func() tea.Msg {
		err := inbox.Delete(ctx, id)
		return messageDeletedMsg{id: id, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := writeClipboard(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusDuration, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
