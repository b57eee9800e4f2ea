package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-label-keeper/internal/logger"
	"github.com/MKhiriev/go-label-keeper/models"
)

// labelRepository is the SQL implementation of [LabelRepository] over the
// "labels" and "label_links" tables.
//
// Every query carries project_id in its WHERE clause, so a label is never
// reachable through a project that does not own it.
type labelRepository struct {
	*DB
	logger *logger.Logger
}

func NewLabelRepository(db *DB, logger *logger.Logger) LabelRepository {
	logger.Debug().Msg("creating label repository")
	return &labelRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *labelRepository) ListByProject(ctx context.Context, projectID int64) ([]models.Label, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildListLabelsQuery(projectID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "labelRepository.ListByProject").
			Int64("project_id", projectID).
			Bool("retryable", r.retryable(err)).
			Msg("failed to execute query for listing labels")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	labels := make([]models.Label, 0, 16)
	for rows.Next() {
		label, scanErr := scanLabel(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "labelRepository.ListByProject").
				Int64("project_id", projectID).
				Msg("failed to scan label row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		labels = append(labels, label)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).
			Str("func", "labelRepository.ListByProject").
			Int64("project_id", projectID).
			Msg("rows iteration error")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return labels, nil
}

func (r *labelRepository) FindByTitle(ctx context.Context, projectID int64, title string) (models.Label, error) {
	query, args, err := r.buildFindLabelByTitleQuery(projectID, title)
	if err != nil {
		return models.Label{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.findOne(ctx, "labelRepository.FindByTitle", query, args)
}

// Create inserts label with fresh timestamps.
//
// A violation of UNIQUE(project_id, title) is reported as
// [ErrLabelTitleTaken]; it happens when a concurrent request created the
// same title after the caller's existence check.
func (r *labelRepository) Create(ctx context.Context, label models.Label) (models.Label, error) {
	log := logger.FromContext(ctx)

	now := time.Now().UTC()
	label.CreatedAt = now
	label.UpdatedAt = now

	query, args, err := r.buildInsertLabelQuery(label)
	if err != nil {
		return models.Label{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&label.ID); err != nil {
		if r.isUniqueViolation(err) {
			log.Debug().
				Str("func", "labelRepository.Create").
				Int64("project_id", label.ProjectID).
				Str("title", label.Title).
				Msg("label title is already taken")
			return models.Label{}, ErrLabelTitleTaken
		}

		log.Err(err).
			Str("func", "labelRepository.Create").
			Int64("project_id", label.ProjectID).
			Bool("retryable", r.retryable(err)).
			Msg("failed to insert label")
		return models.Label{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return label, nil
}

// Update writes the attributes present in update and returns the label as
// stored afterwards.
func (r *labelRepository) Update(ctx context.Context, update models.LabelUpdate) (models.Label, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildUpdateLabelQuery(update, time.Now().UTC())
	if err != nil {
		return models.Label{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		if r.isUniqueViolation(err) {
			return models.Label{}, ErrLabelTitleTaken
		}

		log.Err(err).
			Str("func", "labelRepository.Update").
			Int64("project_id", update.ProjectID).
			Int64("label_id", update.ID).
			Bool("retryable", r.retryable(err)).
			Msg("failed to update label")
		return models.Label{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return models.Label{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return models.Label{}, ErrLabelNotFound
	}

	query, args, err = r.buildFindLabelByIDQuery(update.ProjectID, update.ID)
	if err != nil {
		return models.Label{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.findOne(ctx, "labelRepository.Update", query, args)
}

// Delete removes the issue links of label and then the label itself inside
// one transaction.
func (r *labelRepository) Delete(ctx context.Context, label models.Label) (models.Label, error) {
	log := logger.FromContext(ctx)

	linksQuery, linksArgs, err := r.buildDeleteLabelLinksQuery(label.ID)
	if err != nil {
		return models.Label{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	labelQuery, labelArgs, err := r.buildDeleteLabelQuery(label.ProjectID, label.ID)
	if err != nil {
		return models.Label{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "labelRepository.Delete").
			Int64("label_id", label.ID).
			Msg("failed to begin transaction")
		return models.Label{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, linksQuery, linksArgs...); err != nil {
		log.Err(err).
			Str("func", "labelRepository.Delete").
			Int64("label_id", label.ID).
			Msg("failed to delete label links")
		return models.Label{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	result, err := tx.ExecContext(ctx, labelQuery, labelArgs...)
	if err != nil {
		log.Err(err).
			Str("func", "labelRepository.Delete").
			Int64("label_id", label.ID).
			Msg("failed to delete label")
		return models.Label{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return models.Label{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return models.Label{}, ErrLabelNotFound
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "labelRepository.Delete").
			Int64("label_id", label.ID).
			Msg("failed to commit transaction")
		return models.Label{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	return label, nil
}

func (r *labelRepository) findOne(ctx context.Context, funcName, query string, args []any) (models.Label, error) {
	label, err := scanLabel(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Label{}, ErrLabelNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", funcName).
			Bool("retryable", r.retryable(err)).
			Msg("failed to find label")
		return models.Label{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return label, nil
}
