package store

import (
	"context"

	"github.com/MKhiriev/go-label-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// LabelRepository stores labels. Every method is scoped to a project.
type LabelRepository interface {
	// ListByProject returns every label of the project ordered by title.
	ListByProject(ctx context.Context, projectID int64) ([]models.Label, error)
	// FindByTitle returns the label whose title equals title exactly, or
	// [ErrLabelNotFound].
	FindByTitle(ctx context.Context, projectID int64, title string) (models.Label, error)
	// Create inserts label and returns it with server-assigned fields.
	Create(ctx context.Context, label models.Label) (models.Label, error)
	// Update writes the non-nil attributes of update and returns the
	// resulting label.
	Update(ctx context.Context, update models.LabelUpdate) (models.Label, error)
	// Delete removes label and its issue links in one transaction and
	// returns the label as it was before deletion.
	Delete(ctx context.Context, label models.Label) (models.Label, error)
}

// IssueRepository reads issues together with their labels, milestone and
// user notes count.
type IssueRepository interface {
	// ListVisible returns the issues of the project visible to user.
	// Confidential issues are included when includeConfidential is set or
	// the user is their author or assignee.
	ListVisible(ctx context.Context, projectID int64, user models.User, includeConfidential bool) ([]models.Issue, error)
}

type ProjectRepository interface {
	FindByID(ctx context.Context, projectID int64) (models.Project, error)
	FindByFullPath(ctx context.Context, namespace, path string) (models.Project, error)
}

type MemberRepository interface {
	// GetAccessLevel returns [models.NoAccess] for non-members.
	GetAccessLevel(ctx context.Context, projectID, userID int64) (models.AccessLevel, error)
}

type UserRepository interface {
	FindByID(ctx context.Context, userID int64) (models.User, error)
}
