package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-label-keeper/internal/issuefilter"
	"github.com/MKhiriev/go-label-keeper/internal/logger"
	"github.com/MKhiriev/go-label-keeper/internal/store"
	"github.com/MKhiriev/go-label-keeper/internal/validators"
	"github.com/MKhiriev/go-label-keeper/models"
)

type labelService struct {
	labelRepository store.LabelRepository
	issueRepository store.IssueRepository
	accessService   AccessService
	validator       validators.Validator
	logger          *logger.Logger
}

func NewLabelService(
	labelRepository store.LabelRepository,
	issueRepository store.IssueRepository,
	accessService AccessService,
	validator validators.Validator,
	logger *logger.Logger,
) LabelService {
	return &labelService{
		labelRepository: labelRepository,
		issueRepository: issueRepository,
		accessService:   accessService,
		validator:       validator,
		logger:          logger,
	}
}

// List returns every label of the project and the issues visible to user,
// narrowed by filter.
func (s *labelService) List(ctx context.Context, user models.User, project models.Project, filter issuefilter.Filter) (models.LabelsWithIssues, error) {
	if err := s.accessService.Authorize(ctx, user, models.PermissionReadProject, project); err != nil {
		return models.LabelsWithIssues{}, err
	}

	labels, err := s.labelRepository.ListByProject(ctx, project.ID)
	if err != nil {
		return models.LabelsWithIssues{}, fmt.Errorf("error listing labels: %w", err)
	}

	includeConfidential, err := s.accessService.Can(ctx, user, models.PermissionReadConfidentialIssues, project)
	if err != nil {
		return models.LabelsWithIssues{}, err
	}

	issues, err := s.issueRepository.ListVisible(ctx, project.ID, user, includeConfidential)
	if err != nil {
		return models.LabelsWithIssues{}, fmt.Errorf("error listing issues: %w", err)
	}

	return models.LabelsWithIssues{
		Labels: labels,
		Issues: filter.Apply(issues),
	}, nil
}

// Create adds a label to the project.
//
// The existence check and the insert are separate statements. When a
// concurrent request wins the race the storage unique constraint fires and
// the caller gets a title validation error instead of a conflict.
func (s *labelService) Create(ctx context.Context, user models.User, project models.Project, request models.CreateLabelRequest) (models.Label, error) {
	log := logger.FromContext(ctx)

	if err := s.accessService.Authorize(ctx, user, models.PermissionAdminLabel, project); err != nil {
		return models.Label{}, err
	}

	_, err := s.labelRepository.FindByTitle(ctx, project.ID, request.Name)
	switch {
	case err == nil:
		return models.Label{}, ErrLabelAlreadyExists
	case !errors.Is(err, store.ErrLabelNotFound):
		return models.Label{}, fmt.Errorf("error checking label existence: %w", err)
	}

	label := request.Label(project.ID)
	if err = s.validator.Validate(ctx, label); err != nil {
		return models.Label{}, err
	}

	created, err := s.labelRepository.Create(ctx, label)
	if errors.Is(err, store.ErrLabelTitleTaken) {
		log.Info().
			Str("func", "labelService.Create").
			Int64("project_id", project.ID).
			Str("title", label.Title).
			Msg("label was created concurrently")
		return models.Label{}, validators.NewValidationError(validators.FieldTitle, validators.MsgTaken)
	}
	if err != nil {
		return models.Label{}, fmt.Errorf("error creating label: %w", err)
	}

	return created, nil
}

// Delete removes the label titled name and returns it as it was.
func (s *labelService) Delete(ctx context.Context, user models.User, project models.Project, name string) (models.Label, error) {
	if err := s.accessService.Authorize(ctx, user, models.PermissionAdminLabel, project); err != nil {
		return models.Label{}, err
	}

	label, err := s.labelRepository.FindByTitle(ctx, project.ID, name)
	if err != nil {
		return models.Label{}, fmt.Errorf("error finding label: %w", err)
	}

	deleted, err := s.labelRepository.Delete(ctx, label)
	if err != nil {
		return models.Label{}, fmt.Errorf("error deleting label: %w", err)
	}

	return deleted, nil
}

// Update writes the attributes present in request to the label titled
// request.Name. Absent attributes keep their stored values.
func (s *labelService) Update(ctx context.Context, user models.User, project models.Project, request models.UpdateLabelRequest) (models.Label, error) {
	if !request.HasUpdates() {
		return models.Label{}, ErrMissingUpdateAttributes
	}

	if err := s.accessService.Authorize(ctx, user, models.PermissionAdminLabel, project); err != nil {
		return models.Label{}, err
	}

	label, err := s.labelRepository.FindByTitle(ctx, project.ID, request.Name)
	if err != nil {
		return models.Label{}, fmt.Errorf("error finding label: %w", err)
	}

	update := request.LabelUpdate(label)
	if err = s.validator.Validate(ctx, update); err != nil {
		return models.Label{}, err
	}

	updated, err := s.labelRepository.Update(ctx, update)
	if errors.Is(err, store.ErrLabelTitleTaken) {
		return models.Label{}, validators.NewValidationError(validators.FieldTitle, validators.MsgTaken)
	}
	if err != nil {
		return models.Label{}, fmt.Errorf("error updating label: %w", err)
	}

	return updated, nil
}
