package adapter

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/avatar-dashboard/internal/config"
	"github.com/MKhiriev/avatar-dashboard/internal/logger"
	"github.com/MKhiriev/avatar-dashboard/internal/utils"
)

type backgroundRemover struct {
	client *utils.HTTPClient
	url    string

	logger *logger.Logger
}

// NewBackgroundRemover constructs the HTTP implementation of
// [BackgroundRemover]. With an empty adapterCfg.BackgroundRemovalURL the
// returned remover fails every call with [ErrNotConfigured].
func NewBackgroundRemover(adapterCfg config.Adapter, logger *logger.Logger) (BackgroundRemover, error) {
	if adapterCfg.BackgroundRemovalURL == "" {
		return disabledRemover{}, nil
	}

	endpoint, err := utils.NormalizeBaseURL(adapterCfg.BackgroundRemovalURL)
	if err != nil {
		return nil, fmt.Errorf("invalid background removal url: %w", err)
	}

	client := utils.NewHTTPClient()
	if adapterCfg.RequestTimeout > 0 {
		client.SetTimeout(adapterCfg.RequestTimeout)
	}

	return &backgroundRemover{client: client, url: endpoint, logger: logger}, nil
}

// Remove posts the raw image and returns the processed image bytes.
func (r *backgroundRemover) Remove(ctx context.Context, image []byte, contentType string) ([]byte, error) {
	if contentType == "" {
		contentType = http.DetectContentType(image)
	}

	resp, err := r.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", contentType).
		SetHeader("Accept", "image/png").
		SetBody(image).
		Post(r.url)
	if err != nil {
		return nil, fmt.Errorf("background removal request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	processed := resp.Body()
	if len(processed) == 0 {
		return nil, fmt.Errorf("background removal: %w", ErrEmptyResponse)
	}

	r.logger.Debug().
		Int("original_size", len(image)).
		Int("processed_size", len(processed)).
		Msg("background removed")

	return processed, nil
}

type disabledRemover struct{}

func (disabledRemover) Remove(context.Context, []byte, string) ([]byte, error) {
	return nil, fmt.Errorf("background removal: %w", ErrNotConfigured)
}
