// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// IssueState is the lifecycle state of an issue. The states are mutually
// exclusive.
type IssueState string

const (
	IssueStateOpened IssueState = "opened"
	IssueStateClosed IssueState = "closed"
)

// Issue is a project-scoped work item with an optional milestone and any
// number of labels.
type Issue struct {
	ID int64

	// IID is the project-local sequential number of the issue.
	IID int64

	ProjectID   int64
	Title       string
	Description *string
	State       IssueState

	// Confidential issues are hidden from callers that are neither author,
	// assignee nor allowed to read confidential issues.
	Confidential bool

	AuthorID   int64
	AssigneeID *int64

	// Milestone is nil when the issue is not assigned to any milestone.
	Milestone *Milestone

	// Labels are the labels linked to the issue, ordered by title.
	Labels []Label

	// UserNotesCount is the number of non-system notes on the issue.
	UserNotesCount int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasLabel reports whether any label linked to the issue has the given title.
func (i Issue) HasLabel(title string) bool {
	for _, label := range i.Labels {
		if label.Title == title {
			return true
		}
	}
	return false
}

// MilestoneTitle returns the title of the issue milestone and whether the
// issue has one.
func (i Issue) MilestoneTitle() (string, bool) {
	if i.Milestone == nil {
		return "", false
	}
	return i.Milestone.Title, true
}
