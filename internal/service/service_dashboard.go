package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/avatar-dashboard/internal/logger"
	"github.com/MKhiriev/avatar-dashboard/internal/store"
	"github.com/MKhiriev/avatar-dashboard/models"
)

type dashboardService struct {
	clientRepository store.ClientRepository
	avatarRepository store.AvatarRepository

	logger *logger.Logger
}

// NewDashboardService builds a DashboardService over the given repositories.
// The repositories may be backed by SQL or by the backend REST interface.
func NewDashboardService(clients store.ClientRepository, avatars store.AvatarRepository, logger *logger.Logger) DashboardService {
	return &dashboardService{
		clientRepository: clients,
		avatarRepository: avatars,
		logger:           logger,
	}
}

func (d *dashboardService) ClientViews(ctx context.Context) ([]models.ClientView, error) {
	views, _, err := d.load(ctx)
	if err != nil {
		return nil, err
	}

	return views, nil
}

func (d *dashboardService) Summary(ctx context.Context) (models.DashboardSummary, error) {
	views, avatars, err := d.load(ctx)
	if err != nil {
		return models.DashboardSummary{}, err
	}

	return SummarizeClients(views, len(avatars)), nil
}

func (d *dashboardService) MyClient(ctx context.Context, userID string) (models.ClientView, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		return models.ClientView{}, ErrInvalidDataProvided
	}

	client, err := d.clientRepository.FindClientByUserID(ctx, userID)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("client search by user id failed")
		return models.ClientView{}, fmt.Errorf("client search by user id failed: %w", err)
	}

	avatars, err := d.avatarRepository.ListAvatarsByUser(ctx, client.UserID)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("listing avatars of user failed")
		return models.ClientView{}, fmt.Errorf("listing avatars of user failed: %w", err)
	}

	return AggregateClients([]models.Client{client}, avatars)[0], nil
}

func (d *dashboardService) load(ctx context.Context) ([]models.ClientView, []models.Avatar, error) {
	log := logger.FromContext(ctx)

	clients, err := d.clientRepository.ListClients(ctx)
	if err != nil {
		log.Err(err).Msg("listing clients failed")
		return nil, nil, fmt.Errorf("listing clients failed: %w", err)
	}

	avatars, err := d.avatarRepository.ListAvatars(ctx)
	if err != nil {
		log.Err(err).Msg("listing avatars failed")
		return nil, nil, fmt.Errorf("listing avatars failed: %w", err)
	}

	log.Debug().Int("clients", len(clients)).Int("avatars", len(avatars)).Msg("dashboard records loaded")

	return AggregateClients(clients, avatars), avatars, nil
}
