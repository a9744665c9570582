package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/avatar-dashboard/internal/adapter"
	"github.com/MKhiriev/avatar-dashboard/internal/config"
	"github.com/MKhiriev/avatar-dashboard/internal/logger"
	"github.com/MKhiriev/avatar-dashboard/internal/mock"
	"github.com/MKhiriev/avatar-dashboard/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const (
	demoEmail    = "demo@example.com"
	demoPassword = "demo-password"
)

func newTestDemoUserService(t *testing.T) (DemoUserService, *mock.MockBackend) {
	t.Helper()
	backend := mock.NewMockBackend(gomock.NewController(t))
	cfg := config.App{DemoEmail: demoEmail, DemoPassword: demoPassword}
	return NewDemoUserService(backend, cfg, logger.Nop()), backend
}

func TestDemoUserService_ExistingAccount(t *testing.T) {
	svc, backend := newTestDemoUserService(t)
	ctx := context.Background()

	gomock.InOrder(
		backend.EXPECT().SignIn(ctx, demoEmail, demoPassword).Return(models.Session{AccessToken: "t1"}, nil),
		backend.EXPECT().SignOut(ctx, "t1").Return(nil),
	)

	result := svc.EnsureDemoUser(ctx)

	assert.Equal(t, models.DemoUserResult{Success: true}, result)
}

func TestDemoUserService_CreatesAccount(t *testing.T) {
	svc, backend := newTestDemoUserService(t)
	ctx := context.Background()

	gomock.InOrder(
		backend.EXPECT().SignIn(ctx, demoEmail, demoPassword).Return(models.Session{}, adapter.ErrBadRequest),
		backend.EXPECT().SignUp(ctx, demoEmail, demoPassword).Return(models.Session{AccessToken: "t2"}, nil),
		backend.EXPECT().SignOut(ctx, "t2").Return(nil),
	)

	result := svc.EnsureDemoUser(ctx)

	assert.Equal(t, models.DemoUserResult{Success: true, Created: true}, result)
}

func TestDemoUserService_CreatedWithoutSession_SkipsSignOut(t *testing.T) {
	svc, backend := newTestDemoUserService(t)
	ctx := context.Background()

	backend.EXPECT().SignIn(ctx, demoEmail, demoPassword).Return(models.Session{}, adapter.ErrBadRequest)
	backend.EXPECT().SignUp(ctx, demoEmail, demoPassword).Return(models.Session{}, nil)

	result := svc.EnsureDemoUser(ctx)

	assert.True(t, result.Success)
	assert.True(t, result.Created)
}

func TestDemoUserService_SignUpFails_ReportsError(t *testing.T) {
	svc, backend := newTestDemoUserService(t)
	ctx := context.Background()

	backend.EXPECT().SignIn(ctx, demoEmail, demoPassword).Return(models.Session{}, adapter.ErrBadRequest)
	backend.EXPECT().SignUp(ctx, demoEmail, demoPassword).Return(models.Session{}, adapter.ErrBadGateway)

	result := svc.EnsureDemoUser(ctx)

	assert.False(t, result.Success)
	assert.Equal(t, adapter.ErrBadGateway.Error(), result.Error)
}

func TestDemoUserService_SignOutFails_ReportsError(t *testing.T) {
	svc, backend := newTestDemoUserService(t)
	ctx := context.Background()

	backend.EXPECT().SignIn(ctx, demoEmail, demoPassword).Return(models.Session{AccessToken: "t1"}, nil)
	backend.EXPECT().SignOut(ctx, "t1").Return(adapter.ErrInternalServerError)

	result := svc.EnsureDemoUser(ctx)

	assert.False(t, result.Success)
	assert.False(t, result.Created)
	assert.NotEmpty(t, result.Error)
}
