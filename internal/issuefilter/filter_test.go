// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package issuefilter

import (
	"testing"

	"github.com/MKhiriev/go-label-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func label(title string) models.Label {
	return models.Label{Title: title}
}

func milestone(title string) *models.Milestone {
	return &models.Milestone{Title: title}
}

func ids(issues []models.Issue) []int64 {
	out := make([]int64, 0, len(issues))
	for _, issue := range issues {
		out = append(out, issue.ID)
	}
	return out
}

func sampleIssues() []models.Issue {
	return []models.Issue{
		{ID: 1, State: models.IssueStateOpened, Milestone: milestone("v1"), Labels: []models.Label{label("bug")}},
		{ID: 2, State: models.IssueStateClosed, Milestone: milestone("v1"), Labels: []models.Label{label("feature"), label("ui")}},
		{ID: 3, State: models.IssueStateOpened, Milestone: milestone("v2")},
		{ID: 4, State: models.IssueStateClosed, Labels: []models.Label{label("Bug")}},
	}
}

func TestByState(t *testing.T) {
	tests := []struct {
		name    string
		state   string
		wantIDs []int64
	}{
		{name: "opened", state: "opened", wantIDs: []int64{1, 3}},
		{name: "closed", state: "closed", wantIDs: []int64{2, 4}},
		{name: "empty state is no filter", state: "", wantIDs: []int64{1, 2, 3, 4}},
		{name: "unknown state is no filter", state: "foo", wantIDs: []int64{1, 2, 3, 4}},
		{name: "state is case-sensitive", state: "Opened", wantIDs: []int64{1, 2, 3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ByState(sampleIssues(), tt.state)
			assert.Equal(t, tt.wantIDs, ids(got))
		})
	}
}

func TestByState_OnlyMatchingStateAndSubset(t *testing.T) {
	issues := sampleIssues()
	for _, state := range []models.IssueState{models.IssueStateOpened, models.IssueStateClosed} {
		got := ByState(issues, string(state))
		for _, issue := range got {
			assert.Equal(t, state, issue.State)
			assert.Contains(t, issues, issue)
		}
	}
}

func TestByLabels(t *testing.T) {
	tests := []struct {
		name    string
		labels  string
		wantIDs []int64
	}{
		{name: "single label", labels: "bug", wantIDs: []int64{1}},
		{name: "any of several labels", labels: "bug,ui", wantIDs: []int64{1, 2}},
		{name: "titles are case-sensitive", labels: "Bug", wantIDs: []int64{4}},
		{name: "unknown label", labels: "docs", wantIDs: []int64{}},
		{name: "empty csv matches nothing", labels: "", wantIDs: []int64{}},
		{name: "spaces are not trimmed", labels: "bug, ui", wantIDs: []int64{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ByLabels(sampleIssues(), tt.labels)
			assert.Equal(t, tt.wantIDs, ids(got))
		})
	}
}

func TestByMilestone(t *testing.T) {
	tests := []struct {
		name      string
		milestone string
		wantIDs   []int64
	}{
		{name: "exact title", milestone: "v1", wantIDs: []int64{1, 2}},
		{name: "other title", milestone: "v2", wantIDs: []int64{3}},
		{name: "no substring match", milestone: "v", wantIDs: []int64{}},
		{name: "no case-insensitive match", milestone: "V1", wantIDs: []int64{}},
		{name: "empty title never matches issues without milestone", milestone: "", wantIDs: []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ByMilestone(sampleIssues(), tt.milestone)
			assert.Equal(t, tt.wantIDs, ids(got))
		})
	}
}

func TestFilters_DoNotMutateInput(t *testing.T) {
	issues := sampleIssues()
	snapshot := sampleIssues()

	_ = ByState(issues, "opened")
	_ = ByLabels(issues, "bug")
	_ = ByMilestone(issues, "v1")

	require.Equal(t, snapshot, issues)
}

func TestMilestoneThenState(t *testing.T) {
	issues := []models.Issue{
		{ID: 1, State: models.IssueStateOpened, Milestone: milestone("v1")},
		{ID: 2, State: models.IssueStateClosed, Milestone: milestone("v1")},
		{ID: 3, State: models.IssueStateOpened, Milestone: milestone("v2")},
	}

	byMilestone := ByMilestone(issues, "v1")
	assert.Equal(t, []int64{1, 2}, ids(byMilestone))

	byState := ByState(byMilestone, "opened")
	assert.Equal(t, []int64{1}, ids(byState))
}

func TestFilter_Apply(t *testing.T) {
	str := func(s string) *string { return &s }

	tests := []struct {
		name    string
		filter  Filter
		wantIDs []int64
	}{
		{name: "no filters", filter: Filter{}, wantIDs: []int64{1, 2, 3, 4}},
		{name: "milestone only", filter: Filter{Milestone: str("v1")}, wantIDs: []int64{1, 2}},
		{name: "milestone and state", filter: Filter{Milestone: str("v1"), State: str("closed")}, wantIDs: []int64{2}},
		{name: "labels and state", filter: Filter{Labels: str("bug,Bug"), State: str("opened")}, wantIDs: []int64{1}},
		{name: "all three", filter: Filter{Milestone: str("v1"), Labels: str("ui"), State: str("opened")}, wantIDs: []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.filter.Apply(sampleIssues())
			assert.Equal(t, tt.wantIDs, ids(got))
		})
	}
}

func TestFilter_IsEmpty(t *testing.T) {
	s := "opened"
	assert.True(t, Filter{}.IsEmpty())
	assert.False(t, Filter{State: &s}.IsEmpty())
}
