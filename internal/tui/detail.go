package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/invest-portal/models"
)

type detailModel struct {
	message models.ContactMessage
	status  string
}

func readStatus(isRead bool) string {
	if isRead {
		return "read"
	}
	return "unread"
}

func (m detailModel) View() string {
	var b strings.Builder

	fmt.Fprintf(&b, "From:     %s <%s>\n", m.message.Name, m.message.Email)
	fmt.Fprintf(&b, "Subject:  %s\n", valueOrDash(m.message.Subject))
	fmt.Fprintf(&b, "Date:     %s\n", formatDate(m.message.Date, m.message.CreatedAt))
	fmt.Fprintf(&b, "Status:   %s\n", readStatus(m.message.IsRead))
	b.WriteString("\n")
	b.WriteString(m.message.Message)

	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(m.status)
	}

	toggle := "m: mark read"
	if m.message.IsRead {
		toggle = "m: mark unread"
	}

	return renderPage(fmt.Sprintf("MESSAGE #%d", m.message.ID), b.String(),
		toggle+" │ c: copy email │ d: delete │ esc: back")
}
