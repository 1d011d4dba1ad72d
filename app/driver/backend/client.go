// Package backend is the HTTP driver for the platform backend: the session
// exchange plus the profile calls that follow it.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"auth-client/app/config"
	"auth-client/app/domain"
)

const (
	loginPath           = "/auth/login"
	profilePath         = "/users/me"
	completeProfilePath = "/users/complete-profile"

	headerAppType   = "X-App-Type"
	headerRequestID = "X-Request-ID"

	// Error bodies larger than this are truncated before they become
	// user-visible messages.
	maxErrorBody = 1 << 20
)

// Client implements port.SessionExchanger over HTTPS/JSON.
type Client struct {
	httpClient *http.Client
	baseURL    string
	appType    domain.AppType
	logger     *slog.Logger
}

// NewClient creates a backend client. The HTTP client carries the configured
// timeout; no call is ever retried here — retries are the orchestrator's
// caller's explicit decision.
func NewClient(cfg *config.Config, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.HTTPTimeout},
		baseURL:    strings.TrimRight(cfg.BackendBaseURL, "/"),
		appType:    cfg.AppType,
		logger:     logger.With("component", "backend_client"),
	}
}

// loginResponse is the 2xx body of POST /auth/login.
type loginResponse struct {
	Message     string              `json:"message"`
	APIToken    string              `json:"api_token"`
	UserProfile *domain.UserProfile `json:"user_profile"`
}

// errorResponse is the backend's structured error body.
type errorResponse struct {
	Detail string `json:"detail"`
}

// Exchange trades a verified identity credential for the backend's own API
// session token and the user's profile snapshot. Exactly one network call.
// The identity credential goes into Authorization as-is; every later call
// uses the issued API token as a Bearer credential.
func (c *Client) Exchange(ctx context.Context, identityCredential string) (*domain.ExchangeResult, error) {
	ctx, span := otel.Tracer("backend-client").Start(ctx, "exchange_session")
	defer span.End()
	span.SetAttributes(attribute.String("app_type", string(c.appType)))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+loginPath, nil)
	if err != nil {
		return nil, domain.WrapError(domain.ErrKindTransport, "failed to build exchange request", err)
	}
	req.Header.Set("Authorization", identityCredential)
	req.Header.Set(headerAppType, string(c.appType))
	c.setCommonHeaders(req)

	body, err := c.do(req, "exchange")
	if err != nil {
		return nil, err
	}

	var resp loginResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, domain.WrapError(domain.ErrKindBackendExchange, "failed to decode exchange response", err)
	}
	if resp.APIToken == "" || resp.UserProfile == nil {
		return nil, domain.NewAuthError(domain.ErrKindBackendExchange, "exchange response missing api_token or user_profile")
	}

	c.logger.Info("session exchange succeeded",
		"user_id", resp.UserProfile.InternalUserID,
		"roles", resp.UserProfile.Roles)

	return &domain.ExchangeResult{APIToken: resp.APIToken, Profile: resp.UserProfile}, nil
}

// FetchProfile returns the freshest profile snapshot for the session.
func (c *Client) FetchProfile(ctx context.Context, apiToken string) (*domain.UserProfile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+profilePath, nil)
	if err != nil {
		return nil, domain.WrapError(domain.ErrKindTransport, "failed to build profile request", err)
	}
	req.Header.Set("Authorization", "Bearer "+apiToken)
	c.setCommonHeaders(req)

	body, err := c.do(req, "fetch_profile")
	if err != nil {
		return nil, err
	}

	return decodeProfile(body)
}

// CompleteProfile submits the role-specific profile fields and returns the
// updated snapshot. Unset optional fields are serialized as nulls.
func (c *Client) CompleteProfile(ctx context.Context, apiToken string, data *domain.ProfileData) (*domain.UserProfile, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return nil, domain.WrapError(domain.ErrKindBackendExchange, "failed to encode profile data", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+completeProfilePath, bytes.NewReader(payload))
	if err != nil {
		return nil, domain.WrapError(domain.ErrKindTransport, "failed to build complete-profile request", err)
	}
	req.Header.Set("Authorization", "Bearer "+apiToken)
	c.setCommonHeaders(req)

	body, err := c.do(req, "complete_profile")
	if err != nil {
		return nil, err
	}

	return decodeProfile(body)
}

// do executes one request and maps the outcome into the error taxonomy:
// connectivity problems become TRANSPORT, non-2xx responses become
// BACKEND_EXCHANGE carrying the decoded `detail` (or the raw body).
func (c *Client) do(req *http.Request, op string) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("backend call failed", "operation", op, "error", err)
		return nil, domain.WrapError(domain.ErrKindTransport, "could not reach the server", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return nil, domain.WrapError(domain.ErrKindTransport, "failed to read response body", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := decodeErrorDetail(body)
		c.logger.Error("backend returned an error",
			"operation", op,
			"status", resp.StatusCode,
			"detail", message)
		return nil, domain.NewAuthError(domain.ErrKindBackendExchange, message)
	}

	return body, nil
}

func (c *Client) setCommonHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(headerRequestID, uuid.New().String())
}

// decodeErrorDetail extracts the structured `detail` field from an error
// body, falling back to the raw body when it is not structured.
func decodeErrorDetail(body []byte) string {
	var errResp errorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Detail != "" {
		return errResp.Detail
	}
	if len(body) == 0 {
		return "the server rejected the request"
	}
	return string(body)
}

func decodeProfile(body []byte) (*domain.UserProfile, error) {
	profile := &domain.UserProfile{}
	if err := json.Unmarshal(body, profile); err != nil {
		return nil, domain.WrapError(domain.ErrKindBackendExchange, "failed to decode profile response", err)
	}
	return profile, nil
}
