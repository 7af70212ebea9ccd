package service

import (
	"context"

	"github.com/MKhiriev/invest-portal/internal/adapter"
	"github.com/MKhiriev/invest-portal/internal/logger"
	"github.com/MKhiriev/invest-portal/models"
)

type clientAuthService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func NewClientAuthService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{adapter: serverAdapter, logger: logger}
}

func (a *clientAuthService) Login(ctx context.Context, username, password string) (models.User, error) {
	user, err := a.adapter.Login(ctx, models.Credentials{Username: username, Password: password})
	if err != nil {
		return models.User{}, mapAdapterError(err)
	}

	if !user.IsAdmin {
		a.adapter.SetToken("")
		a.logger.Info().Str("username", user.Username).Msg("non-admin login rejected")
		return models.User{}, ErrAdminRequired
	}

	a.logger.Info().Int64("id", user.ID).Msg("admin logged in")
	return user, nil
}

func (a *clientAuthService) Logout() {
	a.adapter.SetToken("")
}

func (a *clientAuthService) ServerVersion(ctx context.Context) (string, error) {
	version, err := a.adapter.ServerVersion(ctx)
	if err != nil {
		return "", mapAdapterError(err)
	}
	return version, nil
}
