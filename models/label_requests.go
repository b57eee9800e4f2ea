// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CreateLabelRequest carries the declared params of a create-label call.
type CreateLabelRequest struct {
	Name        string
	Color       string
	Description *string
}

// Label builds the label that would be persisted for projectID.
func (r CreateLabelRequest) Label(projectID int64) Label {
	return Label{
		ProjectID:   projectID,
		Title:       r.Name,
		Color:       r.Color,
		Description: r.Description,
	}
}

// UpdateLabelRequest carries the declared params of an update-label call.
//
// Optional fields are pointers: nil means the client did not send the
// parameter, while a pointer to "" means it was sent empty.
type UpdateLabelRequest struct {
	// Name identifies the label being updated. Required.
	Name string

	// NewName, if sent, becomes the label title.
	NewName *string

	Color       *string
	Description *string

	// ClearDescription is set when description was sent as null.
	ClearDescription bool
}

// HasUpdates reports whether at least one of NewName, Color or Description
// was sent.
func (r UpdateLabelRequest) HasUpdates() bool {
	return r.NewName != nil || r.Color != nil || r.Description != nil || r.ClearDescription
}

// LabelUpdate converts the request into a [LabelUpdate] for the given label.
// NewName is applied to the Title attribute.
func (r UpdateLabelRequest) LabelUpdate(label Label) LabelUpdate {
	return LabelUpdate{
		ID:               label.ID,
		ProjectID:        label.ProjectID,
		Title:            r.NewName,
		Color:            r.Color,
		Description:      r.Description,
		ClearDescription: r.ClearDescription && r.Description == nil,
	}
}
