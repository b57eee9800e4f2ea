package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-label-keeper/internal/logger"
	"github.com/MKhiriev/go-label-keeper/models"
)

// issueRepository loads issues with their labels, milestone and user notes
// count eagerly: one query for the issues and one for all their labels.
type issueRepository struct {
	*DB
	logger *logger.Logger
}

func NewIssueRepository(db *DB, logger *logger.Logger) IssueRepository {
	logger.Debug().Msg("creating issue repository")
	return &issueRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *issueRepository) ListVisible(ctx context.Context, projectID int64, user models.User, includeConfidential bool) ([]models.Issue, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildListIssuesQuery(projectID, user.UserID, includeConfidential)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "issueRepository.ListVisible").
			Int64("project_id", projectID).
			Bool("retryable", r.retryable(err)).
			Msg("failed to execute query for listing issues")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	issues := make([]models.Issue, 0, 32)
	for rows.Next() {
		issue, scanErr := scanIssue(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "issueRepository.ListVisible").
				Int64("project_id", projectID).
				Msg("failed to scan issue row")
			return nil, scanErr
		}
		issues = append(issues, issue)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	if len(issues) == 0 {
		return issues, nil
	}

	if err = r.attachLabels(ctx, projectID, issues); err != nil {
		return nil, err
	}

	return issues, nil
}

// attachLabels loads the labels of issues in one query and assigns them in
// place, keeping the title order of the query.
func (r *issueRepository) attachLabels(ctx context.Context, projectID int64, issues []models.Issue) error {
	log := logger.FromContext(ctx)

	index := make(map[int64]int, len(issues))
	ids := make([]int64, 0, len(issues))
	for i, issue := range issues {
		index[issue.ID] = i
		ids = append(ids, issue.ID)
	}

	query, args, err := r.buildListIssueLabelsQuery(projectID, ids)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "issueRepository.attachLabels").
			Int64("project_id", projectID).
			Int("issues_count", len(ids)).
			Msg("failed to execute query for issue labels")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var issueID int64
		label, scanErr := scanLabel(rows, &issueID)
		if scanErr != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}

		if i, ok := index[issueID]; ok {
			issues[i].Labels = append(issues[i].Labels, label)
		}
	}

	if err = rows.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return nil
}
