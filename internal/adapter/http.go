package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/invest-portal/internal/config"
	"github.com/MKhiriev/invest-portal/internal/logger"
	"github.com/MKhiriev/invest-portal/internal/utils"
	"github.com/MKhiriev/invest-portal/models"
)

var errEmptyToken = errors.New("server returned an empty token")

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the REST implementation of [ServerAdapter].
// The base URL is taken from adapterCfg.HTTPAddress; a missing scheme
// defaults to http.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Login posts the credentials to POST /api/login and keeps the returned
// token.
func (h *httpServerAdapter) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	var authResp models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(credentials).
		SetResult(&authResp).
		Post("/api/login")
	if err != nil {
		return models.User{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	if authResp.Token == "" {
		return models.User{}, errEmptyToken
	}

	h.SetToken(authResp.Token)
	h.logger.Debug().Int64("id", authResp.User.ID).Msg("logged in")
	return authResp.User, nil
}

func (h *httpServerAdapter) CurrentUser(ctx context.Context) (models.User, error) {
	var user models.User

	resp, err := h.authedRequest(ctx).
		SetResult(&user).
		Get("/api/user")
	if err != nil {
		return models.User{}, fmt.Errorf("current user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

func (h *httpServerAdapter) ServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) ListContactMessages(ctx context.Context) ([]models.ContactMessage, error) {
	var list models.ListResponse[models.ContactMessage]

	resp, err := h.authedRequest(ctx).
		SetResult(&list).
		Get("/api/contact")
	if err != nil {
		return nil, fmt.Errorf("list contact messages request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return list.Data, nil
}

func (h *httpServerAdapter) SetContactMessageRead(ctx context.Context, id int64, isRead bool) (models.ContactMessage, error) {
	var message models.ContactMessage

	resp, err := h.authedRequest(ctx).
		SetBody(models.ContactStatusUpdate{IsRead: &isRead}).
		SetResult(&message).
		Put(contactMessagePath(id))
	if err != nil {
		return models.ContactMessage{}, fmt.Errorf("update contact message request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ContactMessage{}, err
	}

	return message, nil
}

func (h *httpServerAdapter) DeleteContactMessage(ctx context.Context, id int64) error {
	resp, err := h.authedRequest(ctx).Delete(contactMessagePath(id))
	if err != nil {
		return fmt.Errorf("delete contact message request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func contactMessagePath(id int64) string {
	return "/api/contact/" + strconv.FormatInt(id, 10)
}
