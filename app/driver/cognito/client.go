// Package cognito is the identity provider driver. It adapts the Cognito
// user pool API to the port.IdentityClient interface and maps every provider
// error into the domain taxonomy. It performs no business decisions.
package cognito

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"

	"auth-client/app/config"
)

// Client wraps the Cognito IDP API client for one user pool app client.
type Client struct {
	api      *cognitoidentityprovider.Client
	clientID string
	logger   *slog.Logger
}

// NewClient creates a new Cognito client. All provider calls share the
// configured HTTP timeout.
func NewClient(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Client, error) {
	if cfg.CognitoClientID == "" {
		return nil, fmt.Errorf("cognito client ID is required")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.CognitoRegion),
		awsconfig.WithHTTPClient(&http.Client{Timeout: cfg.HTTPTimeout}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	logger.Info("Cognito client initialized",
		"region", cfg.CognitoRegion,
		"client_id", cfg.CognitoClientID)

	return &Client{
		api:      cognitoidentityprovider.NewFromConfig(awsCfg),
		clientID: cfg.CognitoClientID,
		logger:   logger,
	}, nil
}

// API returns the underlying Cognito IDP client.
func (c *Client) API() *cognitoidentityprovider.Client {
	return c.api
}

// ClientID returns the user pool app client ID.
func (c *Client) ClientID() string {
	return c.clientID
}
