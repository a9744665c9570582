package service

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"sync"

	"github.com/MKhiriev/avatar-dashboard/internal/adapter"
	"github.com/MKhiriev/avatar-dashboard/internal/config"
	"github.com/MKhiriev/avatar-dashboard/internal/logger"
	"github.com/MKhiriev/avatar-dashboard/models"
)

const processedLogoContentType = "image/png"

// logoService serves the logo asset. The processed rendition is cached in
// memory; it is computed lazily on the first request and recomputed by
// Refresh.
type logoService struct {
	remover adapter.BackgroundRemover
	path    string

	mu        sync.RWMutex
	processed []byte
	attempted bool

	logger *logger.Logger
}

func NewLogoService(remover adapter.BackgroundRemover, cfg config.App, logger *logger.Logger) LogoService {
	return &logoService{
		remover: remover,
		path:    cfg.LogoPath,
		logger:  logger,
	}
}

// Logo returns the processed logo when one is cached. Otherwise it tries
// background removal once and falls back to the original asset on any
// failure. Only a missing or unreadable original is an error.
func (l *logoService) Logo(ctx context.Context) (models.Logo, error) {
	if l.path == "" {
		return models.Logo{}, ErrLogoNotConfigured
	}

	l.mu.RLock()
	processed, attempted := l.processed, l.attempted
	l.mu.RUnlock()

	if processed != nil {
		return models.Logo{Data: processed, ContentType: processedLogoContentType, Processed: true}, nil
	}

	if !attempted {
		if err := l.Refresh(ctx); err == nil {
			return l.Logo(ctx)
		}
	}

	original, contentType, err := l.readOriginal()
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("path", l.path).Msg("reading logo failed")
		return models.Logo{}, err
	}

	return models.Logo{Data: original, ContentType: contentType}, nil
}

// Refresh reruns background removal over the original asset. On failure the
// previously cached rendition, if any, is kept.
func (l *logoService) Refresh(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if l.path == "" {
		return ErrLogoNotConfigured
	}

	l.mu.Lock()
	l.attempted = true
	l.mu.Unlock()

	original, contentType, err := l.readOriginal()
	if err != nil {
		log.Err(err).Str("path", l.path).Msg("reading logo failed")
		return err
	}

	processed, err := l.remover.Remove(ctx, original, contentType)
	if err != nil {
		log.Warn().Err(err).Msg("background removal failed, serving original logo")
		return fmt.Errorf("background removal failed: %w", err)
	}

	l.mu.Lock()
	l.processed = processed
	l.mu.Unlock()

	log.Debug().Int("bytes", len(processed)).Msg("processed logo refreshed")

	return nil
}

func (l *logoService) readOriginal() ([]byte, string, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, "", fmt.Errorf("error reading logo file: %w", err)
	}

	return data, http.DetectContentType(data), nil
}
