package service

import (
	"github.com/MKhiriev/invest-portal/internal/adapter"
	"github.com/MKhiriev/invest-portal/internal/logger"
)

type ClientServices struct {
	AuthService  ClientAuthService
	InboxService ClientInboxService
}

func NewClientServices(serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService:  NewClientAuthService(serverAdapter, logger),
		InboxService: NewClientInboxService(serverAdapter, logger),
	}
}
