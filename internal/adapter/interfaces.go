// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a Go client for the labels HTTP API.
//
// The primary abstraction is [LabelsClient]; [NewHTTPLabelsAdapter] ships the
// resty-based implementation. Error values defined in errors.go are mapped
// from HTTP status codes by mapHTTPError so that callers can use [errors.Is]
// (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-label-keeper/internal/issuefilter"
	"github.com/MKhiriev/go-label-keeper/models"
)

// LabelsClient talks to the labels API of one server on behalf of one
// bearer token.
//
// projectID is either a numeric id or a "namespace/path" full path; the
// implementation escapes it.
type LabelsClient interface {
	// SetToken stores the bearer token attached to subsequent requests.
	SetToken(token string)

	// Token returns the stored bearer token, or an empty string.
	Token() string

	// ListLabels returns every label of the project and its visible issues
	// narrowed by filter.
	ListLabels(ctx context.Context, projectID string, filter issuefilter.Filter) (models.LabelsResponse, error)

	// CreateLabel creates a label. Returns [ErrConflict] (wrapped) when the
	// title is taken and [ErrValidation] when an attribute is rejected.
	CreateLabel(ctx context.Context, projectID string, request models.CreateLabelRequest) (models.LabelEntity, error)

	// DeleteLabel deletes the label titled name and returns it as it was.
	DeleteLabel(ctx context.Context, projectID, name string) (models.LabelEntity, error)

	// UpdateLabel sends only the attributes set in request.
	UpdateLabel(ctx context.Context, projectID string, request models.UpdateLabelRequest) (models.LabelEntity, error)

	// ServerVersion returns the version reported by GET /version.
	ServerVersion(ctx context.Context) (string, error)
}
