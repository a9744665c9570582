package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/avatar-dashboard/internal/config"
	"github.com/MKhiriev/avatar-dashboard/internal/logger"
	"github.com/MKhiriev/avatar-dashboard/internal/utils"
	"github.com/MKhiriev/avatar-dashboard/models"
)

type credentialsGateway struct {
	client *utils.HTTPClient
	url    string
	apiKey string

	logger *logger.Logger
}

// NewCredentialsGateway constructs the HTTP implementation of
// [CredentialsGateway] posting to adapterCfg.CredentialsURL.
func NewCredentialsGateway(adapterCfg config.Adapter, logger *logger.Logger) (CredentialsGateway, error) {
	endpoint, err := utils.NormalizeBaseURL(adapterCfg.CredentialsURL)
	if err != nil {
		return nil, fmt.Errorf("invalid credentials url: %w", err)
	}

	client := utils.NewHTTPClient()
	if adapterCfg.RequestTimeout > 0 {
		client.SetTimeout(adapterCfg.RequestTimeout)
	}
	client.SetHeader(apiKeyHeader, adapterCfg.BackendAPIKey)

	return &credentialsGateway{
		client: client,
		url:    endpoint,
		apiKey: adapterCfg.BackendAPIKey,
		logger: logger,
	}, nil
}

// Send posts payload and decodes the endpoint's {success, error, data}
// answer. A non-2xx status whose body still carries an error message is
// reported as an unsuccessful result together with the mapped error.
func (g *credentialsGateway) Send(ctx context.Context, payload models.CredentialsPayload) (models.CredentialsResult, error) {
	req := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload)
	if token, ok := utils.GetBackendTokenFromContext(ctx); ok {
		req.SetAuthToken(token)
	} else {
		req.SetAuthToken(g.apiKey)
	}

	resp, err := req.Post(g.url)
	if err != nil {
		return models.CredentialsResult{}, fmt.Errorf("credentials request: %w", err)
	}

	if mapped := mapHTTPError(resp); mapped != nil {
		return models.CredentialsResult{Success: false, Error: errorMessage(resp.Body())}, mapped
	}

	body := resp.Body()
	if len(strings.TrimSpace(string(body))) == 0 {
		return models.CredentialsResult{}, fmt.Errorf("credentials: %w", ErrEmptyResponse)
	}

	var result models.CredentialsResult
	if err = json.Unmarshal(body, &result); err != nil {
		return models.CredentialsResult{}, fmt.Errorf("decode credentials response: %w", err)
	}

	g.logger.Debug().
		Str("action", string(payload.Action)).
		Bool("success", result.Success).
		Msg("credentials endpoint answered")

	return result, nil
}
