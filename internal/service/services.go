package service

import (
	"fmt"

	"github.com/MKhiriev/go-label-keeper/internal/config"
	"github.com/MKhiriev/go-label-keeper/internal/logger"
	"github.com/MKhiriev/go-label-keeper/internal/store"
	"github.com/MKhiriev/go-label-keeper/internal/validators"
)

type Services struct {
	AuthService    AuthService
	AccessService  AccessService
	ProjectService ProjectService
	LabelService   LabelService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	accessService := NewAccessService(storages.MemberRepository, logger)

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.App, logger),
		AccessService:  accessService,
		ProjectService: NewProjectService(storages.ProjectRepository, accessService, logger),
		LabelService: NewLabelService(
			storages.LabelRepository,
			storages.IssueRepository,
			accessService,
			validators.NewLabelValidator(),
			logger,
		),
		AppInfoService: appInfoService,
	}, nil
}
