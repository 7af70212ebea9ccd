package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"

	"github.com/MKhiriev/invest-portal/models"
)

type listModel struct {
	items   []models.ContactMessage
	idx     int
	loading bool
	spinner spinner.Model
	status  string
}

func newListModel() listModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return listModel{spinner: s}
}

func (m listModel) current() (models.ContactMessage, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.ContactMessage{}, false
	}
	return m.items[m.idx], true
}

func (m listModel) unread() int {
	n := 0
	for _, item := range m.items {
		if !item.IsRead {
			n++
		}
	}
	return n
}

// replace swaps in the updated copy of a message. Unknown ids are ignored.
func (m listModel) replace(message models.ContactMessage) listModel {
	for i := range m.items {
		if m.items[i].ID == message.ID {
			m.items[i] = message
			break
		}
	}
	return m
}

func (m listModel) remove(id int64) listModel {
	items := make([]models.ContactMessage, 0, len(m.items))
	for _, item := range m.items {
		if item.ID != id {
			items = append(items, item)
		}
	}
	m.items = items
	return m.clamp()
}

func (m listModel) clamp() listModel {
	if m.idx >= len(m.items) {
		m.idx = len(m.items) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
	return m
}

func unreadMarker(message models.ContactMessage) string {
	if message.IsRead {
		return " "
	}
	return "●"
}

func (m listModel) View(user models.User) string {
	var b strings.Builder

	header := fmt.Sprintf("Signed in as %s │ %d messages, %d unread", user.Username, len(m.items), m.unread())
	if m.loading {
		header += "  " + m.spinner.View()
	}
	b.WriteString(header)
	b.WriteString("\n\n")

	switch {
	case m.loading && len(m.items) == 0:
		b.WriteString("Loading...")
	case len(m.items) == 0:
		b.WriteString("Inbox is empty")
	default:
		for i, item := range m.items {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}

			row := fmt.Sprintf("%s%s %s  %-20s  %s",
				cursor,
				unreadMarker(item),
				formatDate(item.Date, item.CreatedAt),
				fitText(item.Name, 20),
				fitText(subjectOrMessage(item), 40),
			)
			if !item.IsRead {
				row = unreadStyle.Render(row)
			}
			b.WriteString(row)
			b.WriteString("\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
	}

	return renderPage("CONTACT MESSAGES", strings.TrimRight(b.String(), "\n"),
		"enter: open │ r: refresh │ v: about │ l: log out │ q: quit")
}

func subjectOrMessage(message models.ContactMessage) string {
	if message.Subject != nil && strings.TrimSpace(*message.Subject) != "" {
		return *message.Subject
	}
	return message.Message
}
