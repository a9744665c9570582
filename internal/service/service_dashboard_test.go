package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/avatar-dashboard/internal/logger"
	"github.com/MKhiriev/avatar-dashboard/internal/mock"
	"github.com/MKhiriev/avatar-dashboard/internal/store"
	"github.com/MKhiriev/avatar-dashboard/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestDashboardService(t *testing.T) (DashboardService, *mock.MockClientRepository, *mock.MockAvatarRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	clients := mock.NewMockClientRepository(ctrl)
	avatars := mock.NewMockAvatarRepository(ctrl)

	return NewDashboardService(clients, avatars, logger.Nop()), clients, avatars
}

func regressionClients() []models.Client {
	return []models.Client{
		{ID: "c1", UserID: models.Some("u1"), HeygenAPIKey: models.Some("key-123")},
		{ID: "c2", UserID: models.Some("u2"), HeygenAPIKey: models.Null[string]()},
	}
}

func regressionAvatars() []models.Avatar {
	return []models.Avatar{
		{ID: "a1", UserID: models.Some("u1")},
		{ID: "a2", UserID: models.Some("u2")},
	}
}

func TestDashboardService_ClientViews(t *testing.T) {
	svc, clients, avatars := newTestDashboardService(t)
	ctx := context.Background()

	clients.EXPECT().ListClients(ctx).Return(regressionClients(), nil)
	avatars.EXPECT().ListAvatars(ctx).Return(regressionAvatars(), nil)

	views, err := svc.ClientViews(ctx)

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.True(t, views[0].HasCredentials)
	assert.Equal(t, 1, views[0].AvatarCount)
	assert.False(t, views[1].HasCredentials)
	assert.Equal(t, 1, views[1].AvatarCount)
}

func TestDashboardService_ClientViews_ClientsError(t *testing.T) {
	svc, clients, _ := newTestDashboardService(t)
	ctx := context.Background()

	clients.EXPECT().ListClients(ctx).Return(nil, assert.AnError)

	views, err := svc.ClientViews(ctx)

	assert.Nil(t, views)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestDashboardService_ClientViews_AvatarsError(t *testing.T) {
	svc, clients, avatars := newTestDashboardService(t)
	ctx := context.Background()

	clients.EXPECT().ListClients(ctx).Return(regressionClients(), nil)
	avatars.EXPECT().ListAvatars(ctx).Return(nil, assert.AnError)

	_, err := svc.ClientViews(ctx)

	assert.ErrorIs(t, err, assert.AnError)
}

func TestDashboardService_Summary(t *testing.T) {
	svc, clients, avatars := newTestDashboardService(t)
	ctx := context.Background()

	orphans := append(regressionAvatars(), models.Avatar{ID: "a3"})
	clients.EXPECT().ListClients(ctx).Return(regressionClients(), nil)
	avatars.EXPECT().ListAvatars(ctx).Return(orphans, nil)

	summary, err := svc.Summary(ctx)

	require.NoError(t, err)
	assert.Equal(t, models.DashboardSummary{
		TotalClients:        2,
		ConfiguredClients:   1,
		UnconfiguredClients: 1,
		TotalAvatars:        3,
	}, summary)
}

func TestDashboardService_Summary_Error(t *testing.T) {
	svc, clients, _ := newTestDashboardService(t)
	ctx := context.Background()

	clients.EXPECT().ListClients(ctx).Return(nil, assert.AnError)

	summary, err := svc.Summary(ctx)

	assert.Equal(t, models.DashboardSummary{}, summary)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestDashboardService_MyClient(t *testing.T) {
	svc, clients, avatars := newTestDashboardService(t)
	ctx := context.Background()

	client := regressionClients()[0]
	clients.EXPECT().FindClientByUserID(ctx, "u1").Return(client, nil)
	avatars.EXPECT().ListAvatarsByUser(ctx, models.Some("u1")).
		Return([]models.Avatar{{ID: "a1", UserID: models.Some("u1")}, {ID: "a9", UserID: models.Some("u1")}}, nil)

	view, err := svc.MyClient(ctx, "u1")

	require.NoError(t, err)
	assert.Equal(t, "c1", view.ID)
	assert.Equal(t, 2, view.AvatarCount)
	assert.True(t, view.HasCredentials)
}

func TestDashboardService_MyClient_EmptyUserID(t *testing.T) {
	svc, _, _ := newTestDashboardService(t)

	_, err := svc.MyClient(context.Background(), "")

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestDashboardService_MyClient_NotFound(t *testing.T) {
	svc, clients, _ := newTestDashboardService(t)
	ctx := context.Background()

	clients.EXPECT().FindClientByUserID(ctx, "u404").Return(models.Client{}, store.ErrClientNotFound)

	_, err := svc.MyClient(ctx, "u404")

	assert.ErrorIs(t, err, store.ErrClientNotFound)
}

func TestDashboardService_MyClient_AvatarsError(t *testing.T) {
	svc, clients, avatars := newTestDashboardService(t)
	ctx := context.Background()

	clients.EXPECT().FindClientByUserID(ctx, "u1").Return(regressionClients()[0], nil)
	avatars.EXPECT().ListAvatarsByUser(ctx, gomock.Any()).Return(nil, assert.AnError)

	_, err := svc.MyClient(ctx, "u1")

	assert.ErrorIs(t, err, assert.AnError)
}
