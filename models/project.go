// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Visibility controls who can read a project.
type Visibility string

const (
	VisibilityPrivate  Visibility = "private"
	VisibilityInternal Visibility = "internal"
	VisibilityPublic   Visibility = "public"
)

// Project owns labels, issues and milestones. It is the scoping root of every
// label operation.
type Project struct {
	ID         int64
	Namespace  string
	Path       string
	Name       string
	Visibility Visibility
	CreatedAt  time.Time
}

// FullPath returns the "namespace/path" form of the project identifier.
func (p Project) FullPath() string {
	return p.Namespace + "/" + p.Path
}

// IsPrivate reports whether only members can read the project.
func (p Project) IsPrivate() bool {
	return p.Visibility != VisibilityPublic && p.Visibility != VisibilityInternal
}
