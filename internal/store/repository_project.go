package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-label-keeper/internal/logger"
	"github.com/MKhiriev/go-label-keeper/models"
)

type projectRepository struct {
	*DB
	logger *logger.Logger
}

func NewProjectRepository(db *DB, logger *logger.Logger) ProjectRepository {
	logger.Debug().Msg("creating project repository")
	return &projectRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *projectRepository) FindByID(ctx context.Context, projectID int64) (models.Project, error) {
	query, args, err := r.buildFindProjectByIDQuery(projectID)
	if err != nil {
		return models.Project{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.findOne(ctx, "projectRepository.FindByID", query, args)
}

func (r *projectRepository) FindByFullPath(ctx context.Context, namespace, path string) (models.Project, error) {
	query, args, err := r.buildFindProjectByPathQuery(namespace, path)
	if err != nil {
		return models.Project{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.findOne(ctx, "projectRepository.FindByFullPath", query, args)
}

func (r *projectRepository) findOne(ctx context.Context, funcName, query string, args []any) (models.Project, error) {
	project, err := scanProject(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Project{}, ErrNoProjectWasFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", funcName).
			Bool("retryable", r.retryable(err)).
			Msg("failed to find project")
		return models.Project{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return project, nil
}
