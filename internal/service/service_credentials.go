package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/avatar-dashboard/internal/adapter"
	"github.com/MKhiriev/avatar-dashboard/internal/logger"
	"github.com/MKhiriev/avatar-dashboard/models"
)

type credentialsService struct {
	gateway adapter.CredentialsGateway

	logger *logger.Logger
}

func NewCredentialsService(gateway adapter.CredentialsGateway, logger *logger.Logger) CredentialsService {
	return &credentialsService{
		gateway: gateway,
		logger:  logger,
	}
}

// Manage validates the action, builds the payload and sends it.
//
// Unknown actions fail fast with ErrInvalidAction and nothing is sent. When
// the endpoint rejects the request the decoded result is returned together
// with the error, so callers can show the endpoint's message.
func (c *credentialsService) Manage(ctx context.Context, input models.CredentialsInput) (models.CredentialsResult, error) {
	log := logger.FromContext(ctx)

	if !input.Action.Valid() {
		log.Error().Str("action", string(input.Action)).Msg("unknown credentials action")
		return models.CredentialsResult{}, fmt.Errorf("%w: %q", ErrInvalidAction, input.Action)
	}

	payload := models.BuildCredentialsPayload(input)

	result, err := c.gateway.Send(ctx, payload)
	if err != nil {
		log.Err(err).Str("action", string(payload.Action)).Msg("credentials request failed")
		return result, fmt.Errorf("credentials request failed: %w", err)
	}

	return result, nil
}
