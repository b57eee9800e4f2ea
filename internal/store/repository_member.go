package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-label-keeper/internal/logger"
	"github.com/MKhiriev/go-label-keeper/models"
)

type memberRepository struct {
	*DB
	logger *logger.Logger
}

func NewMemberRepository(db *DB, logger *logger.Logger) MemberRepository {
	logger.Debug().Msg("creating member repository")
	return &memberRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *memberRepository) GetAccessLevel(ctx context.Context, projectID, userID int64) (models.AccessLevel, error) {
	query, args, err := r.buildGetAccessLevelQuery(projectID, userID)
	if err != nil {
		return models.NoAccess, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var level int
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&level)
	if errors.Is(err, sql.ErrNoRows) {
		return models.NoAccess, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "memberRepository.GetAccessLevel").
			Int64("project_id", projectID).
			Int64("user_id", userID).
			Msg("failed to get access level")
		return models.NoAccess, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return models.AccessLevel(level), nil
}
