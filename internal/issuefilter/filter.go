// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package issuefilter narrows issue collections by state, label membership
// or milestone title.
//
// Every function returns a new slice and leaves its input untouched, so the
// predicates can be composed freely.
package issuefilter

import (
	"strings"

	"github.com/MKhiriev/go-label-keeper/models"
)

// ByState keeps only opened issues for "opened" and only closed issues for
// "closed". Any other value, including "", is not a filter: a copy of the
// input is returned.
func ByState(issues []models.Issue, state string) []models.Issue {
	switch models.IssueState(state) {
	case models.IssueStateOpened, models.IssueStateClosed:
		return selectIssues(issues, func(issue models.Issue) bool {
			return issue.State == models.IssueState(state)
		})
	default:
		return selectIssues(issues, func(models.Issue) bool { return true })
	}
}

// ByLabels splits labelsCSV on "," and keeps issues having at least one
// label whose title is in the resulting set. Titles are compared exactly.
func ByLabels(issues []models.Issue, labelsCSV string) []models.Issue {
	titles := make(map[string]struct{})
	for _, title := range strings.Split(labelsCSV, ",") {
		titles[title] = struct{}{}
	}

	return selectIssues(issues, func(issue models.Issue) bool {
		for _, label := range issue.Labels {
			if _, ok := titles[label.Title]; ok {
				return true
			}
		}
		return false
	})
}

// ByMilestone keeps issues whose milestone title equals milestoneTitle,
// case-sensitively. Issues without a milestone never match.
func ByMilestone(issues []models.Issue, milestoneTitle string) []models.Issue {
	return selectIssues(issues, func(issue models.Issue) bool {
		title, ok := issue.MilestoneTitle()
		return ok && title == milestoneTitle
	})
}

func selectIssues(issues []models.Issue, keep func(models.Issue) bool) []models.Issue {
	selected := make([]models.Issue, 0, len(issues))
	for _, issue := range issues {
		if keep(issue) {
			selected = append(selected, issue)
		}
	}
	return selected
}
