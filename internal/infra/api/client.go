// Package api wraps the shared HTTP client every backend call goes through.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"jobfinder/config"
	"jobfinder/internal/domain/entity"
	domainerrors "jobfinder/internal/domain/errors"
	"jobfinder/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	loginPath      = "/accounts/candidate/login"
	ownProfilePath = "/accounts/me"
	pushTokenPath  = "/me/push-token"
)

// Client is the shared HTTP client wrapper. It owns the single source of
// truth for the bearer token applied to outgoing requests: SetBearer is the
// only mutation point, and only the session controller calls it.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger

	mu     sync.RWMutex
	bearer string
}

// ClientParams holds dependencies for Client, injected by Fx.
type ClientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewClient is the constructor for Client.
func NewClient(params ClientParams) *Client {
	base := strings.TrimRight(params.Config.API.BaseURL, "/") + params.Config.API.BasePath

	return &Client{
		baseURL: base,
		httpClient: &http.Client{
			Timeout: params.Config.API.Timeout,
		},
		logger: params.Logger,
	}
}

// AsAuthAPI exposes the client as the AuthAPI collaborator.
func AsAuthAPI(c *Client) service.AuthAPI { return c }

// AsTokenBinder exposes the client as the TokenBinder collaborator.
func AsTokenBinder(c *Client) service.TokenBinder { return c }

// SetBearer sets or clears the default Authorization header for every
// subsequent request. It never suspends.
func (c *Client) SetBearer(token string) {
	c.mu.Lock()
	c.bearer = token
	c.mu.Unlock()
}

// loginEnvelope enumerates the shapes the login endpoint is known to return:
// the token and account either at the top level or nested under "data", with
// the profile under "account" or "user".
type loginEnvelope struct {
	Token   string         `json:"token"`
	Account map[string]any `json:"account"`
	User    map[string]any `json:"user"`
	Data    *struct {
		Token   string         `json:"token"`
		Account map[string]any `json:"account"`
		User    map[string]any `json:"user"`
	} `json:"data"`
	Message string `json:"message"`
}

func (e *loginEnvelope) normalize() (string, *entity.Account) {
	token := e.Token
	account := e.Account
	if account == nil {
		account = e.User
	}
	if e.Data != nil {
		if token == "" {
			token = e.Data.Token
		}
		if account == nil {
			account = e.Data.Account
		}
		if account == nil {
			account = e.Data.User
		}
	}

	return token, entity.AccountFromPayload(account)
}

// LoginWithPassword calls the password-login endpoint.
func (c *Client) LoginWithPassword(ctx context.Context, email, password string) (*service.LoginResponse, error) {
	body := map[string]string{"email": email, "password": password}

	var envelope loginEnvelope
	status, err := c.do(ctx, http.MethodPost, loginPath, body, &envelope)
	if err != nil {
		return nil, err
	}
	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		reason := envelope.Message
		if reason == "" {
			reason = http.StatusText(status)
		}

		return nil, domainerrors.ErrAuthenticationFailed.WithDetails(reason).WrapMessage("login rejected")
	}

	token, account := envelope.normalize()
	if token == "" {
		return nil, domainerrors.ErrAuthenticationFailed.WrapMessage("login response carried no token")
	}

	return &service.LoginResponse{Token: token, Account: account}, nil
}

// FetchOwnProfile calls the "who am I" endpoint with the bound bearer token.
// The account payload arrives under "data", "account" or as the body itself.
func (c *Client) FetchOwnProfile(ctx context.Context) (*entity.Account, error) {
	var raw map[string]any
	status, err := c.do(ctx, http.MethodGet, ownProfilePath, nil, &raw)
	if err != nil {
		return nil, err
	}
	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return nil, domainerrors.ErrEnrichmentFailed.WrapMessage("profile fetch returned " + http.StatusText(status))
	}

	payload := raw
	if nested, ok := raw["data"].(map[string]any); ok {
		payload = nested
	} else if nested, ok := raw["account"].(map[string]any); ok {
		payload = nested
	}

	return entity.AccountFromPayload(payload), nil
}

// PushTokenPayload is the device registration body for push notifications.
type PushTokenPayload struct {
	Token      string `json:"token"`
	DeviceID   string `json:"deviceId,omitempty"`
	Platform   string `json:"platform,omitempty"`
	AppVersion string `json:"appVersion,omitempty"`
	AccountID  string `json:"accountId,omitempty"`
}

// RegisterPushToken syncs the device push token with the backend.
func (c *Client) RegisterPushToken(ctx context.Context, payload *PushTokenPayload) error {
	status, err := c.do(ctx, http.MethodPatch, pushTokenPath, payload, nil)
	if err != nil {
		return err
	}
	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return domainerrors.ErrEnrichmentFailed.WrapMessage("push-token registration returned " + http.StatusText(status))
	}

	return nil
}

// do performs one JSON request against the backend, attaching the bound
// bearer token when present. It returns the HTTP status; transport failures
// map to a domain ServerUnreachable error.
func (c *Client) do(ctx context.Context, method, path string, body, out any) (int, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return 0, errors.Wrap(err, "failed to encode request body")
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, errors.Wrap(err, "failed to build request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.mu.RLock()
	bearer := c.bearer
	c.mu.RUnlock()
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, domainerrors.ErrServerUnreachable.WrapMessage(err.Error())
	}
	defer resp.Body.Close()

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
			c.logger.Debug("Failed to decode response body",
				slog.String("path", path), slog.Int("status", resp.StatusCode), slog.Any("error", err))
		}
	}

	return resp.StatusCode, nil
}
