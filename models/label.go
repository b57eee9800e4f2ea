// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Label is a named, colored tag owned by exactly one project.
// Title is unique within the owning project.
type Label struct {
	// ID is the server-assigned identifier of the label.
	ID int64

	// ProjectID is the identifier of the owning project.
	ProjectID int64

	// Title is the label name. Exposed as "name" in the API.
	Title string

	// Color is a 6-hex-digit color with a leading '#', e.g. "#FFAABB".
	Color string

	// Description is optional; nil means the label has no description.
	Description *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// LabelUpdate describes a partial update of a single label.
// Only non-nil fields are written; nil fields are left untouched.
type LabelUpdate struct {
	// ID is the identifier of the label being updated. Required.
	ID int64

	// ProjectID scopes the update to the owning project. Required.
	ProjectID int64

	// Title, if non-nil, overwrites the label title.
	Title *string

	// Color, if non-nil, overwrites the label color.
	Color *string

	// Description, if non-nil, overwrites the label description.
	Description *string

	// ClearDescription resets the description to NULL. Ignored when
	// Description is set.
	ClearDescription bool
}

// IsEmpty reports whether the update carries no attribute to write.
func (u LabelUpdate) IsEmpty() bool {
	return u.Title == nil && u.Color == nil && u.Description == nil && !u.ClearDescription
}
