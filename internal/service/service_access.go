package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-label-keeper/internal/logger"
	"github.com/MKhiriev/go-label-keeper/internal/store"
	"github.com/MKhiriev/go-label-keeper/models"
)

// accessService derives permissions from the admin flag, project visibility
// and project membership:
//
//	read_project              admin, public/internal project, or any member
//	admin_label               admin, or member with Reporter access or higher
//	read_confidential_issues  admin, or member with Reporter access or higher
type accessService struct {
	memberRepository store.MemberRepository
	logger           *logger.Logger
}

func NewAccessService(memberRepository store.MemberRepository, logger *logger.Logger) AccessService {
	return &accessService{
		memberRepository: memberRepository,
		logger:           logger,
	}
}

func (s *accessService) Can(ctx context.Context, user models.User, permission models.Permission, project models.Project) (bool, error) {
	if user.Admin {
		return true, nil
	}

	if permission == models.PermissionReadProject && !project.IsPrivate() {
		return true, nil
	}

	switch permission {
	case models.PermissionReadProject, models.PermissionAdminLabel, models.PermissionReadConfidentialIssues:
	default:
		return false, nil
	}

	level, err := s.memberRepository.GetAccessLevel(ctx, project.ID, user.UserID)
	if err != nil {
		return false, fmt.Errorf("error getting access level: %w", err)
	}

	switch permission {
	case models.PermissionReadProject:
		return level > models.NoAccess, nil
	default:
		return level >= models.ReporterAccess, nil
	}
}

func (s *accessService) Authorize(ctx context.Context, user models.User, permission models.Permission, project models.Project) error {
	allowed, err := s.Can(ctx, user, permission, project)
	if err != nil {
		return err
	}

	if !allowed {
		logger.FromContext(ctx).Info().
			Str("func", "accessService.Authorize").
			Int64("user_id", user.UserID).
			Int64("project_id", project.ID).
			Str("permission", string(permission)).
			Msg("permission denied")
		return fmt.Errorf("%w: %s", ErrForbidden, permission)
	}

	return nil
}
