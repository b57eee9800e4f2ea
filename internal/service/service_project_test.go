package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-label-keeper/internal/logger"
	"github.com/MKhiriev/go-label-keeper/internal/mock"
	"github.com/MKhiriev/go-label-keeper/internal/store"
	"github.com/MKhiriev/go-label-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestProjectSvc(t *testing.T) (ProjectService, *mock.MockProjectRepository, *mock.MockAccessService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	projects := mock.NewMockProjectRepository(ctrl)
	access := mock.NewMockAccessService(ctrl)
	return NewProjectService(projects, access, logger.Nop()), projects, access
}

func TestProjectService_Resolve_ByNumericID(t *testing.T) {
	svc, projects, access := newTestProjectSvc(t)
	ctx := context.Background()

	projects.EXPECT().FindByID(ctx, int64(8)).Return(publicProject, nil)
	access.EXPECT().Can(ctx, regularUser, models.PermissionReadProject, publicProject).Return(true, nil)

	project, err := svc.Resolve(ctx, regularUser, "8")

	require.NoError(t, err)
	assert.Equal(t, publicProject, project)
}

func TestProjectService_Resolve_ByEncodedPath(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		namespace string
		path      string
	}{
		{"encoded slash", "group%2Fopen", "group", "open"},
		{"nested namespace", "group%2Fsub%2Fopen", "group/sub", "open"},
		{"plain slash", "group/open", "group", "open"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, projects, access := newTestProjectSvc(t)
			ctx := context.Background()

			projects.EXPECT().FindByFullPath(ctx, tt.namespace, tt.path).Return(publicProject, nil)
			access.EXPECT().Can(ctx, regularUser, models.PermissionReadProject, publicProject).Return(true, nil)

			project, err := svc.Resolve(ctx, regularUser, tt.id)

			require.NoError(t, err)
			assert.Equal(t, publicProject.ID, project.ID)
		})
	}
}

func TestProjectService_Resolve_MalformedPath(t *testing.T) {
	for _, id := range []string{"nopath", "group%2F", "%2Fopen", "bad%zzescape"} {
		t.Run(id, func(t *testing.T) {
			svc, _, _ := newTestProjectSvc(t)

			_, err := svc.Resolve(context.Background(), regularUser, id)

			assert.ErrorIs(t, err, ErrProjectNotFound)
		})
	}
}

func TestProjectService_Resolve_NotFound(t *testing.T) {
	svc, projects, _ := newTestProjectSvc(t)
	projects.EXPECT().FindByID(gomock.Any(), int64(404)).Return(models.Project{}, store.ErrNoProjectWasFound)

	_, err := svc.Resolve(context.Background(), regularUser, "404")

	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestProjectService_Resolve_UnreadableLooksLikeNotFound(t *testing.T) {
	svc, projects, access := newTestProjectSvc(t)
	projects.EXPECT().FindByID(gomock.Any(), privateProject.ID).Return(privateProject, nil)
	access.EXPECT().Can(gomock.Any(), regularUser, models.PermissionReadProject, privateProject).Return(false, nil)

	_, err := svc.Resolve(context.Background(), regularUser, "7")

	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestProjectService_Resolve_RepositoryError(t *testing.T) {
	svc, projects, _ := newTestProjectSvc(t)
	repoErr := errors.New("db down")
	projects.EXPECT().FindByID(gomock.Any(), int64(1)).Return(models.Project{}, repoErr)

	_, err := svc.Resolve(context.Background(), regularUser, "1")

	require.Error(t, err)
	assert.ErrorIs(t, err, repoErr)
	assert.NotErrorIs(t, err, ErrProjectNotFound)
}
