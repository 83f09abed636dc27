package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/device-provision/models"
)

// HTTPClientConfig holds the settings of the HTTP management API client.
type HTTPClientConfig struct {
	// BaseURL is the management API root (e.g. "https://api.resin.io").
	BaseURL string

	// Token is the initial session token. May be empty; anonymous clients
	// can still fetch the public environment configuration.
	Token string

	// Timeout bounds every request issued by the client.
	Timeout time.Duration
}

type httpManagementAPI struct {
	client *resty.Client

	mu    sync.RWMutex
	token models.SessionToken
}

// NewManagementAPI builds an HTTP [ManagementAPI] client for the given
// configuration. Zero-value settings fall back to sensible defaults.
func NewManagementAPI(cfg HTTPClientConfig) ManagementAPI {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.resin.io"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpManagementAPI{
		client: cli,
		token:  models.SessionToken{SignedString: strings.TrimSpace(cfg.Token)},
	}
}

func (h *httpManagementAPI) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = models.SessionToken{SignedString: strings.TrimSpace(token)}
}

func (h *httpManagementAPI) Token() string {
	return h.sessionToken().SignedString
}

func (h *httpManagementAPI) GetApplication(ctx context.Context, name string) (models.Application, error) {
	resp, err := h.authedRequest(ctx).Get("/api/application/" + name)
	if err != nil {
		return models.Application{}, fmt.Errorf("get application request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Application{}, err
	}

	var app models.Application
	if err = json.Unmarshal(resp.Body(), &app); err != nil {
		return models.Application{}, fmt.Errorf("decode application response: %w", err)
	}

	return app, nil
}

func (h *httpManagementAPI) GetAPIKey(ctx context.Context, appName string) (string, error) {
	resp, err := h.authedRequest(ctx).Post("/api/application/" + appName + "/generate-api-key")
	if err != nil {
		return "", fmt.Errorf("generate api key request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var body struct {
		APIKey string `json:"api_key"`
	}
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return "", fmt.Errorf("decode api key response: %w", err)
	}

	return body.APIKey, nil
}

func (h *httpManagementAPI) GetRemoteConfig(ctx context.Context) (models.RemoteConfig, error) {
	resp, err := h.authedRequest(ctx).Get("/config")
	if err != nil {
		return models.RemoteConfig{}, fmt.Errorf("get remote config request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RemoteConfig{}, err
	}

	var cfg models.RemoteConfig
	if err = json.Unmarshal(resp.Body(), &cfg); err != nil {
		return models.RemoteConfig{}, fmt.Errorf("decode remote config response: %w", err)
	}

	return cfg, nil
}

func (h *httpManagementAPI) GetDevice(ctx context.Context, uuid string) (models.Device, error) {
	resp, err := h.authedRequest(ctx).Get("/api/device/" + uuid)
	if err != nil {
		return models.Device{}, fmt.Errorf("get device request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Device{}, err
	}

	var device models.Device
	if err = json.Unmarshal(resp.Body(), &device); err != nil {
		return models.Device{}, fmt.Errorf("decode device response: %w", err)
	}

	return device, nil
}

// UserID is resolved locally from the session token claims; the token is the
// API's own signed statement of who the session user is.
func (h *httpManagementAPI) UserID(_ context.Context) (int64, error) {
	id, err := h.sessionToken().UserID()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrNotLoggedIn, err)
	}
	return id, nil
}

// Username is resolved locally from the session token claims.
func (h *httpManagementAPI) Username(_ context.Context) (string, error) {
	username, err := h.sessionToken().Username()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNotLoggedIn, err)
	}
	return username, nil
}

func (h *httpManagementAPI) sessionToken() models.SessionToken {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpManagementAPI) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
