// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Milestone is a project-scoped grouping target (e.g. a release) that issues
// can be assigned to.
type Milestone struct {
	ID        int64
	ProjectID int64
	Title     string
	State     string
}
