package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-label-keeper/internal/logger"
	"github.com/MKhiriev/go-label-keeper/internal/store"
	"github.com/MKhiriev/go-label-keeper/models"
)

type projectService struct {
	projectRepository store.ProjectRepository
	accessService     AccessService
	logger            *logger.Logger
}

func NewProjectService(projectRepository store.ProjectRepository, accessService AccessService, logger *logger.Logger) ProjectService {
	return &projectService{
		projectRepository: projectRepository,
		accessService:     accessService,
		logger:            logger,
	}
}

// Resolve loads the project addressed by id.
//
// An all-digit id is a project id; anything else is an URL-encoded
// "namespace/path" split at its last slash. A project the user cannot read
// is reported as ErrProjectNotFound, like a missing one.
func (s *projectService) Resolve(ctx context.Context, user models.User, id string) (models.Project, error) {
	project, err := s.find(ctx, id)
	if err != nil {
		return models.Project{}, err
	}

	readable, err := s.accessService.Can(ctx, user, models.PermissionReadProject, project)
	if err != nil {
		return models.Project{}, err
	}
	if !readable {
		logger.FromContext(ctx).Debug().
			Str("func", "projectService.Resolve").
			Int64("project_id", project.ID).
			Int64("user_id", user.UserID).
			Msg("project is not readable by user")
		return models.Project{}, ErrProjectNotFound
	}

	return project, nil
}

func (s *projectService) find(ctx context.Context, id string) (models.Project, error) {
	var (
		project models.Project
		err     error
	)

	if projectID, parseErr := strconv.ParseInt(id, 10, 64); parseErr == nil {
		project, err = s.projectRepository.FindByID(ctx, projectID)
	} else {
		fullPath, unescapeErr := url.PathUnescape(id)
		if unescapeErr != nil {
			return models.Project{}, ErrProjectNotFound
		}

		slash := strings.LastIndex(fullPath, "/")
		if slash <= 0 || slash == len(fullPath)-1 {
			return models.Project{}, ErrProjectNotFound
		}

		project, err = s.projectRepository.FindByFullPath(ctx, fullPath[:slash], fullPath[slash+1:])
	}

	if errors.Is(err, store.ErrNoProjectWasFound) {
		return models.Project{}, ErrProjectNotFound
	}
	if err != nil {
		return models.Project{}, fmt.Errorf("error finding project: %w", err)
	}

	return project, nil
}
