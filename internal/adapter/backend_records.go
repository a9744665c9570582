package adapter

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/avatar-dashboard/internal/logger"
	"github.com/MKhiriev/avatar-dashboard/internal/store"
	"github.com/MKhiriev/avatar-dashboard/models"
)

// backendRecords reads client and avatar rows through the backend's REST
// interface. Row-level security of the backend decides which rows the
// caller's token can see.
type backendRecords struct {
	backend Backend
	logger  *logger.Logger
}

// NewBackendStorages returns repositories served by backend.
func NewBackendStorages(backend Backend, logger *logger.Logger) *store.Storages {
	records := &backendRecords{backend: backend, logger: logger}
	return &store.Storages{
		ClientRepository: records,
		AvatarRepository: records,
	}
}

func (r *backendRecords) ListClients(ctx context.Context) ([]models.Client, error) {
	clients := make([]models.Client, 0)
	if err := r.backend.Query(ctx, models.Client{}.TableName(), &clients); err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	return clients, nil
}

func (r *backendRecords) FindClientByUserID(ctx context.Context, userID string) (models.Client, error) {
	var clients []models.Client
	if err := r.backend.Query(ctx, models.Client{}.TableName(), &clients, Eq("user_id", userID)); err != nil {
		return models.Client{}, fmt.Errorf("find client: %w", err)
	}
	if len(clients) == 0 {
		return models.Client{}, store.ErrClientNotFound
	}
	return clients[0], nil
}

func (r *backendRecords) ListAvatars(ctx context.Context) ([]models.Avatar, error) {
	avatars := make([]models.Avatar, 0)
	if err := r.backend.Query(ctx, models.Avatar{}.TableName(), &avatars); err != nil {
		return nil, fmt.Errorf("list avatars: %w", err)
	}
	return avatars, nil
}

func (r *backendRecords) ListAvatarsByUser(ctx context.Context, userID models.Optional[string]) ([]models.Avatar, error) {
	avatars := make([]models.Avatar, 0)
	if err := r.backend.Query(ctx, models.Avatar{}.TableName(), &avatars, OptionalEq("user_id", userID)); err != nil {
		return nil, fmt.Errorf("list avatars by user: %w", err)
	}
	return avatars, nil
}

func (r *backendRecords) CreateAvatar(ctx context.Context, avatar models.Avatar) (models.Avatar, error) {
	var stored []models.Avatar
	if err := r.backend.Insert(ctx, models.Avatar{}.TableName(), avatar, &stored); err != nil {
		if errors.Is(err, ErrConflict) {
			return models.Avatar{}, fmt.Errorf("%w: %w", store.ErrAvatarAlreadyExists, err)
		}
		return models.Avatar{}, fmt.Errorf("create avatar: %w", err)
	}
	if len(stored) == 0 {
		r.logger.Warn().Str("avatar_id", avatar.ID).Msg("backend returned no representation for inserted avatar")
		return avatar, nil
	}
	return stored[0], nil
}
