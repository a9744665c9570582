package service

import (
	"github.com/MKhiriev/avatar-dashboard/internal/adapter"
	"github.com/MKhiriev/avatar-dashboard/internal/config"
	"github.com/MKhiriev/avatar-dashboard/internal/logger"
	"github.com/MKhiriev/avatar-dashboard/internal/store"
	"github.com/MKhiriev/avatar-dashboard/internal/utils"
	"github.com/MKhiriev/avatar-dashboard/models"
)

type Services struct {
	AuthService        AuthService
	DemoUserService    DemoUserService
	DashboardService   DashboardService
	CredentialsService CredentialsService
	AvatarService      AvatarService
	LogoService        LogoService
	AppInfoService     AppInfoService
}

// Adapters groups the outbound collaborators the services depend on.
type Adapters struct {
	Backend            adapter.Backend
	CredentialsGateway adapter.CredentialsGateway
	BackgroundRemover  adapter.BackgroundRemover
}

func NewServices(storages *store.Storages, adapters Adapters, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:        NewAuthService(adapters.Backend, cfg.App, logger),
		DemoUserService:    NewDemoUserService(adapters.Backend, cfg.App, logger),
		DashboardService:   NewDashboardService(storages.ClientRepository, storages.AvatarRepository, logger),
		CredentialsService: NewCredentialsService(adapters.CredentialsGateway, logger),
		AvatarService:      NewAvatarService(storages.AvatarRepository, utils.NewUUIDGenerator(), logger),
		LogoService:        NewLogoService(adapters.BackgroundRemover, cfg.App, logger),
		AppInfoService:     appInfoService,
	}, nil
}
