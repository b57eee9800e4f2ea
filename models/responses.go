// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MessageResponse is the error body used for domain errors such as
// conflict, not-found or forbidden. Message is either a string or, for
// validation failures, a map of attribute name to messages.
type MessageResponse struct {
	Message any `json:"message"`
}

// ErrorResponse is the error body used for malformed requests, e.g. a
// missing required parameter.
type ErrorResponse struct {
	Error string `json:"error"`
}
