// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AccessLevel is the role of a user inside a project.
type AccessLevel int

const (
	NoAccess         AccessLevel = 0
	GuestAccess      AccessLevel = 10
	ReporterAccess   AccessLevel = 20
	DeveloperAccess  AccessLevel = 30
	MaintainerAccess AccessLevel = 40
	OwnerAccess      AccessLevel = 50
)

// Permission names a capability checked against a project.
type Permission string

const (
	PermissionReadProject            Permission = "read_project"
	PermissionAdminLabel             Permission = "admin_label"
	PermissionReadConfidentialIssues Permission = "read_confidential_issues"
)
