// Package di wires the client's dependency stack together.
package di

import (
	"context"
	"fmt"
	"log/slog"

	"auth-client/app/config"
	"auth-client/app/driver/backend"
	"auth-client/app/driver/cognito"
	"auth-client/app/driver/keystore"
	"auth-client/app/gateway"
	"auth-client/app/port"
	"auth-client/app/usecase"
	"auth-client/app/utils/validator"
)

// Container holds all dependencies for the client
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Drivers
	CognitoClient *cognito.Client
	Keystore      *keystore.Store

	// Gateways
	IdentityGateway port.IdentityGateway

	// Usecases
	AuthUsecase port.AuthUsecase
}

// NewContainer creates and initializes a new dependency injection container
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	container := &Container{
		Config: cfg,
		Logger: logger,
	}

	var err error

	container.CognitoClient, err = cognito.NewClient(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Cognito client: %w", err)
	}

	container.Keystore, err = keystore.New(cfg.KeystoreDir, cfg.KeystorePassphrase, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize keystore: %w", err)
	}

	// Initialize gateways
	cognitoAdapter := cognito.NewAdapter(container.CognitoClient, logger)
	container.IdentityGateway = gateway.NewIdentityGateway(cognitoAdapter, logger)

	// Initialize usecases
	exchanger := backend.NewClient(cfg, logger)
	container.AuthUsecase = usecase.NewAuthUseCase(
		container.IdentityGateway,
		exchanger,
		container.Keystore,
		validator.New(),
		logger,
	)

	logger.Info("Container initialized with full dependency stack")

	return container, nil
}
