package store

import (
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-label-keeper/models"
)

var labelColumns = []string{"id", "project_id", "title", "color", "description", "created_at", "updated_at"}

var projectColumns = []string{"id", "namespace", "path", "name", "visibility", "created_at"}

var userColumns = []string{"id", "username", "name", "admin", "state", "created_at"}

var issueColumns = []string{
	"i.id", "i.iid", "i.project_id", "i.title", "i.description", "i.state", "i.confidential",
	"i.author_id", "i.assignee_id", "i.created_at", "i.updated_at",
	"m.id", "m.project_id", "m.title", "m.state",
}

// labels

func (db *DB) buildListLabelsQuery(projectID int64) (string, []any, error) {
	return db.builder().
		Select(labelColumns...).
		From("labels").
		Where(sq.Eq{"project_id": projectID}).
		OrderBy("title ASC").
		ToSql()
}

func (db *DB) buildFindLabelByTitleQuery(projectID int64, title string) (string, []any, error) {
	return db.builder().
		Select(labelColumns...).
		From("labels").
		Where(sq.Eq{"project_id": projectID, "title": title}).
		ToSql()
}

func (db *DB) buildFindLabelByIDQuery(projectID, labelID int64) (string, []any, error) {
	return db.builder().
		Select(labelColumns...).
		From("labels").
		Where(sq.Eq{"project_id": projectID, "id": labelID}).
		ToSql()
}

func (db *DB) buildInsertLabelQuery(label models.Label) (string, []any, error) {
	return db.builder().
		Insert("labels").
		Columns("project_id", "title", "color", "description", "created_at", "updated_at").
		Values(label.ProjectID, label.Title, label.Color, label.Description, label.CreatedAt, label.UpdatedAt).
		Suffix("RETURNING id").
		ToSql()
}

// buildUpdateLabelQuery writes only the attributes present in update.
func (db *DB) buildUpdateLabelQuery(update models.LabelUpdate, now time.Time) (string, []any, error) {
	query := db.builder().
		Update("labels").
		Set("updated_at", now).
		Where(sq.Eq{"id": update.ID, "project_id": update.ProjectID})

	if update.Title != nil {
		query = query.Set("title", *update.Title)
	}
	if update.Color != nil {
		query = query.Set("color", *update.Color)
	}
	switch {
	case update.Description != nil:
		query = query.Set("description", *update.Description)
	case update.ClearDescription:
		query = query.Set("description", nil)
	}

	return query.ToSql()
}

func (db *DB) buildDeleteLabelLinksQuery(labelID int64) (string, []any, error) {
	return db.builder().
		Delete("label_links").
		Where(sq.Eq{"label_id": labelID}).
		ToSql()
}

func (db *DB) buildDeleteLabelQuery(projectID, labelID int64) (string, []any, error) {
	return db.builder().
		Delete("labels").
		Where(sq.Eq{"id": labelID, "project_id": projectID}).
		ToSql()
}

// issues

// buildListIssuesQuery selects the issues of a project with their milestone
// and the number of non-system notes. Unless includeConfidential is set,
// confidential issues are limited to the ones userID authored or is
// assigned to.
func (db *DB) buildListIssuesQuery(projectID, userID int64, includeConfidential bool) (string, []any, error) {
	query := db.builder().
		Select(issueColumns...).
		Column(sq.Expr("(SELECT COUNT(*) FROM notes n WHERE n.issue_id = i.id AND n.system = ?) AS user_notes_count", false)).
		From("issues i").
		LeftJoin("milestones m ON m.id = i.milestone_id AND m.project_id = i.project_id").
		Where(sq.Eq{"i.project_id": projectID})

	if !includeConfidential {
		query = query.Where(sq.Or{
			sq.Eq{"i.confidential": false},
			sq.Eq{"i.author_id": userID},
			sq.Eq{"i.assignee_id": userID},
		})
	}

	return query.OrderBy("i.iid DESC").ToSql()
}

// buildListIssueLabelsQuery selects the labels linked to issueIDs, scoped to
// the project.
func (db *DB) buildListIssueLabelsQuery(projectID int64, issueIDs []int64) (string, []any, error) {
	labelCols := make([]string, 0, len(labelColumns)+1)
	labelCols = append(labelCols, "ll.issue_id")
	for _, c := range labelColumns {
		labelCols = append(labelCols, "l."+c)
	}

	return db.builder().
		Select(labelCols...).
		From("label_links ll").
		Join("labels l ON l.id = ll.label_id").
		Where(sq.Eq{"l.project_id": projectID, "ll.issue_id": issueIDs}).
		OrderBy("l.title ASC").
		ToSql()
}

// projects, members, users

func (db *DB) buildFindProjectByIDQuery(projectID int64) (string, []any, error) {
	return db.builder().
		Select(projectColumns...).
		From("projects").
		Where(sq.Eq{"id": projectID}).
		ToSql()
}

func (db *DB) buildFindProjectByPathQuery(namespace, path string) (string, []any, error) {
	return db.builder().
		Select(projectColumns...).
		From("projects").
		Where(sq.Eq{"namespace": namespace, "path": path}).
		ToSql()
}

func (db *DB) buildGetAccessLevelQuery(projectID, userID int64) (string, []any, error) {
	return db.builder().
		Select("access_level").
		From("project_members").
		Where(sq.Eq{"project_id": projectID, "user_id": userID}).
		ToSql()
}

func (db *DB) buildFindUserByIDQuery(userID int64) (string, []any, error) {
	return db.builder().
		Select(userColumns...).
		From("users").
		Where(sq.Eq{"id": userID}).
		ToSql()
}

// scanning

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLabel(row rowScanner, prefix ...any) (models.Label, error) {
	var label models.Label
	var description sql.NullString

	dest := append(prefix,
		&label.ID,
		&label.ProjectID,
		&label.Title,
		&label.Color,
		&description,
		&label.CreatedAt,
		&label.UpdatedAt,
	)
	if err := row.Scan(dest...); err != nil {
		return models.Label{}, err
	}

	if description.Valid {
		label.Description = &description.String
	}

	return label, nil
}

func scanIssue(row rowScanner) (models.Issue, error) {
	var (
		issue       models.Issue
		description sql.NullString
		assigneeID  sql.NullInt64
		state       string

		milestoneID        sql.NullInt64
		milestoneProjectID sql.NullInt64
		milestoneTitle     sql.NullString
		milestoneState     sql.NullString
	)

	err := row.Scan(
		&issue.ID,
		&issue.IID,
		&issue.ProjectID,
		&issue.Title,
		&description,
		&state,
		&issue.Confidential,
		&issue.AuthorID,
		&assigneeID,
		&issue.CreatedAt,
		&issue.UpdatedAt,
		&milestoneID,
		&milestoneProjectID,
		&milestoneTitle,
		&milestoneState,
		&issue.UserNotesCount,
	)
	if err != nil {
		return models.Issue{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	issue.State = models.IssueState(state)
	if description.Valid {
		issue.Description = &description.String
	}
	if assigneeID.Valid {
		issue.AssigneeID = &assigneeID.Int64
	}
	if milestoneID.Valid {
		issue.Milestone = &models.Milestone{
			ID:        milestoneID.Int64,
			ProjectID: milestoneProjectID.Int64,
			Title:     milestoneTitle.String,
			State:     milestoneState.String,
		}
	}
	issue.Labels = []models.Label{}

	return issue, nil
}

func scanProject(row rowScanner) (models.Project, error) {
	var project models.Project
	var visibility string

	if err := row.Scan(&project.ID, &project.Namespace, &project.Path, &project.Name, &visibility, &project.CreatedAt); err != nil {
		return models.Project{}, err
	}
	project.Visibility = models.Visibility(visibility)

	return project, nil
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User

	if err := row.Scan(&user.UserID, &user.Username, &user.Name, &user.Admin, &user.State, &user.CreatedAt); err != nil {
		return models.User{}, err
	}

	return user, nil
}
