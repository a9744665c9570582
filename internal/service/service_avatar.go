package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/avatar-dashboard/internal/logger"
	"github.com/MKhiriev/avatar-dashboard/internal/store"
	"github.com/MKhiriev/avatar-dashboard/internal/utils"
	"github.com/MKhiriev/avatar-dashboard/models"
)

type avatarService struct {
	avatarRepository store.AvatarRepository
	idGenerator      utils.IDGenerator

	logger *logger.Logger
}

func NewAvatarService(avatars store.AvatarRepository, idGenerator utils.IDGenerator, logger *logger.Logger) AvatarService {
	return &avatarService{
		avatarRepository: avatars,
		idGenerator:      idGenerator,
		logger:           logger,
	}
}

// CreateAvatar stores a new avatar owned by userID. The slug is the
// sanitized name; a name that sanitizes to nothing is rejected with
// ErrInvalidDataProvided.
func (a *avatarService) CreateAvatar(ctx context.Context, userID string, req models.CreateAvatarRequest) (models.Avatar, error) {
	log := logger.FromContext(ctx)

	name := strings.TrimSpace(req.Name)
	slug := utils.SanitizeName(name)
	if userID == "" || strings.Trim(slug, "_") == "" {
		log.Error().Str("user_id", userID).Str("name", req.Name).Msg("invalid avatar data provided")
		return models.Avatar{}, ErrInvalidDataProvided
	}

	avatar := models.Avatar{
		ID:             a.idGenerator.Generate(),
		UserID:         models.Some(userID),
		Name:           name,
		Slug:           slug,
		HeygenAvatarID: req.HeygenAvatarID,
	}

	created, err := a.avatarRepository.CreateAvatar(ctx, avatar)
	if err != nil {
		log.Err(err).Str("slug", slug).Msg("avatar creation ended with error")
		return models.Avatar{}, fmt.Errorf("avatar creation ended with error: %w", err)
	}

	return created, nil
}

func (a *avatarService) SanitizeName(ctx context.Context, name string) string {
	return utils.SanitizeName(name)
}
