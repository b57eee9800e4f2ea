package service

import (
	"context"

	"github.com/MKhiriev/go-label-keeper/internal/issuefilter"
	"github.com/MKhiriev/go-label-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// LabelService implements the label lifecycle of a resolved project.
// Every mutating method authorizes admin_label before touching storage.
type LabelService interface {
	List(ctx context.Context, user models.User, project models.Project, filter issuefilter.Filter) (models.LabelsWithIssues, error)
	Create(ctx context.Context, user models.User, project models.Project, request models.CreateLabelRequest) (models.Label, error)
	Delete(ctx context.Context, user models.User, project models.Project, name string) (models.Label, error)
	Update(ctx context.Context, user models.User, project models.Project, request models.UpdateLabelRequest) (models.Label, error)
}

// ProjectService resolves the project addressed by a request path.
type ProjectService interface {
	// Resolve accepts a numeric id or a URL-encoded "namespace/path".
	Resolve(ctx context.Context, user models.User, id string) (models.Project, error)
}

// AccessService evaluates project permissions.
type AccessService interface {
	Can(ctx context.Context, user models.User, permission models.Permission, project models.Project) (bool, error)
	// Authorize returns [ErrForbidden] when Can reports false.
	Authorize(ctx context.Context, user models.User, permission models.Permission, project models.Project) error
}

type AuthService interface {
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	// Authenticate parses tokenString and loads its active owner.
	Authenticate(ctx context.Context, tokenString string) (models.User, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
