package tui

import (
	"github.com/MKhiriev/invest-portal/models"
)

type loginDoneMsg struct {
	user models.User
	err  error
}

type versionLoadedMsg struct {
	version string
	err     error
}

type listLoadedMsg struct {
	items []models.ContactMessage
	err   error
}

type messageUpdatedMsg struct {
	message models.ContactMessage
	err     error
}

type messageDeletedMsg struct {
	id  int64
	err error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
