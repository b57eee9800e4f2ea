// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// LabelEntity is the API representation of a [Label].
type LabelEntity struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Color       string  `json:"color"`
	Description *string `json:"description"`
}

// MilestoneEntity is the API representation of a [Milestone].
type MilestoneEntity struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	State string `json:"state"`
}

// IssueEntity is the API representation of an [Issue].
type IssueEntity struct {
	ID             int64            `json:"id"`
	IID            int64            `json:"iid"`
	ProjectID      int64            `json:"project_id"`
	Title          string           `json:"title"`
	Description    *string          `json:"description"`
	State          IssueState       `json:"state"`
	Confidential   bool             `json:"confidential"`
	AuthorID       int64            `json:"author_id"`
	AssigneeID     *int64           `json:"assignee_id"`
	Labels         []string         `json:"labels"`
	Milestone      *MilestoneEntity `json:"milestone"`
	UserNotesCount int              `json:"user_notes_count"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// LabelsWithIssues is the result of the list-labels operation: every label
// of the project together with the issues visible to the caller.
type LabelsWithIssues struct {
	Labels []Label
	Issues []Issue
}

// LabelsResponse is the body of a successful list-labels call.
type LabelsResponse struct {
	Labels []LabelEntity `json:"labels"`
	Issues []IssueEntity `json:"issues"`
}

// NewLabelEntity presents a single label.
func NewLabelEntity(label Label) LabelEntity {
	return LabelEntity{
		ID:          label.ID,
		Name:        label.Title,
		Color:       label.Color,
		Description: label.Description,
	}
}

// NewLabelEntities presents a label collection. The result is never nil.
func NewLabelEntities(labels []Label) []LabelEntity {
	entities := make([]LabelEntity, 0, len(labels))
	for _, label := range labels {
		entities = append(entities, NewLabelEntity(label))
	}
	return entities
}

// NewIssueEntity presents a single issue. Labels are rendered as titles.
func NewIssueEntity(issue Issue) IssueEntity {
	labels := make([]string, 0, len(issue.Labels))
	for _, label := range issue.Labels {
		labels = append(labels, label.Title)
	}

	var milestone *MilestoneEntity
	if issue.Milestone != nil {
		milestone = &MilestoneEntity{
			ID:    issue.Milestone.ID,
			Title: issue.Milestone.Title,
			State: issue.Milestone.State,
		}
	}

	return IssueEntity{
		ID:             issue.ID,
		IID:            issue.IID,
		ProjectID:      issue.ProjectID,
		Title:          issue.Title,
		Description:    issue.Description,
		State:          issue.State,
		Confidential:   issue.Confidential,
		AuthorID:       issue.AuthorID,
		AssigneeID:     issue.AssigneeID,
		Labels:         labels,
		Milestone:      milestone,
		UserNotesCount: issue.UserNotesCount,
		CreatedAt:      issue.CreatedAt,
		UpdatedAt:      issue.UpdatedAt,
	}
}

// NewIssueEntities presents an issue collection. The result is never nil.
func NewIssueEntities(issues []Issue) []IssueEntity {
	entities := make([]IssueEntity, 0, len(issues))
	for _, issue := range issues {
		entities = append(entities, NewIssueEntity(issue))
	}
	return entities
}

// NewLabelsResponse presents the result of the list-labels operation.
func NewLabelsResponse(result LabelsWithIssues) LabelsResponse {
	return LabelsResponse{
		Labels: NewLabelEntities(result.Labels),
		Issues: NewIssueEntities(result.Issues),
	}
}
