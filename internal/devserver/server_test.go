package devserver

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"jobfinder/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()

	srv, err := NewServer(&config.DevServerConfig{Secret: "test-secret", BcryptCost: 4},
		slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	return srv, ts
}

func postJSON(t *testing.T, url, token string, body any) (*http.Response, map[string]any) {
	t.Helper()

	return doJSON(t, http.MethodPost, url, token, body)
}

func doJSON(t *testing.T, method, url, token string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = strings.NewReader(string(encoded))
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	decoded := map[string]any{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))

	return resp, decoded
}

func TestServer_RequiresSecret(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	_, err := NewServer(nil, logger)
	require.Error(t, err)

	_, err = NewServer(&config.DevServerConfig{}, logger)
	require.Error(t, err)
}

func TestServer_Login(t *testing.T) {
	srv, ts := newTestServer(t)

	id, err := srv.SeedAccount("Lan", "Lan@Example.com", "secret123", "candidate")
	require.NoError(t, err)

	// Email lookup is case-insensitive.
	resp, body := postJSON(t, ts.URL+"/api/v1/accounts/candidate/login", "", map[string]string{
		"email": "lan@example.com", "password": "secret123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, body["token"])

	account, ok := body["account"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, id, account["_id"])
	assert.Equal(t, "lan@example.com", account["email"])
}

func TestServer_Login_Rejections(t *testing.T) {
	srv, ts := newTestServer(t)

	_, err := srv.SeedAccount("Lan", "lan@example.com", "secret123", "candidate")
	require.NoError(t, err)

	resp, _ := postJSON(t, ts.URL+"/api/v1/accounts/candidate/login", "", map[string]string{
		"email": "lan@example.com", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = postJSON(t, ts.URL+"/api/v1/accounts/candidate/login", "", map[string]string{
		"email": "nobody@example.com", "password": "secret123",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = postJSON(t, ts.URL+"/api/v1/accounts/candidate/login", "", map[string]string{
		"email": "not-an-email",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestServer_Me(t *testing.T) {
	srv, ts := newTestServer(t)

	id, err := srv.SeedAccount("Minh", "minh@example.com", "secret123", "employer")
	require.NoError(t, err)

	resp, body := postJSON(t, ts.URL+"/api/v1/accounts/candidate/login", "", map[string]string{
		"email": "minh@example.com", "password": "secret123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)

	resp, body = doJSON(t, http.MethodGet, ts.URL+"/api/v1/accounts/me", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, id, data["_id"])
	assert.Equal(t, "employer", data["role"])

	resp, _ = doJSON(t, http.MethodGet, ts.URL+"/api/v1/accounts/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodGet, ts.URL+"/api/v1/accounts/me", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestServer_PushToken(t *testing.T) {
	srv, ts := newTestServer(t)

	id, err := srv.SeedAccount("Lan", "lan@example.com", "secret123", "candidate")
	require.NoError(t, err)

	_, body := postJSON(t, ts.URL+"/api/v1/accounts/candidate/login", "", map[string]string{
		"email": "lan@example.com", "password": "secret123",
	})
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)

	resp, _ := doJSON(t, http.MethodPatch, ts.URL+"/api/v1/me/push-token", token, map[string]string{
		"token": "push-1", "platform": "linux", "deviceId": "dev-1",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	reg, ok := srv.PushRegistrations(id)
	require.True(t, ok)
	assert.Equal(t, "push-1", reg.Token)
	assert.Equal(t, "linux", reg.Platform)

	// Missing token field.
	resp, _ = doJSON(t, http.MethodPatch, ts.URL+"/api/v1/me/push-token", token, map[string]string{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Unauthenticated.
	resp, _ = doJSON(t, http.MethodPatch, ts.URL+"/api/v1/me/push-token", "", map[string]string{"token": "push-2"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
