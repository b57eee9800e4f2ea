// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package issuefilter

import "github.com/MKhiriev/go-label-keeper/models"

// Filter holds the optional issue filters of a list request.
// A nil field means the client did not send that filter.
type Filter struct {
	State     *string
	Labels    *string
	Milestone *string
}

// IsEmpty reports whether no filter was supplied.
func (f Filter) IsEmpty() bool {
	return f.State == nil && f.Labels == nil && f.Milestone == nil
}

// Apply runs the supplied filters in the order milestone, labels, state.
func (f Filter) Apply(issues []models.Issue) []models.Issue {
	filtered := issues
	if f.Milestone != nil {
		filtered = ByMilestone(filtered, *f.Milestone)
	}
	if f.Labels != nil {
		filtered = ByLabels(filtered, *f.Labels)
	}
	if f.State != nil {
		filtered = ByState(filtered, *f.State)
	}
	return filtered
}
