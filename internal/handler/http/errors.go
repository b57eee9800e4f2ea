// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrUnauthenticated is returned when a protected handler runs without
	// a user in the request context.
	ErrUnauthenticated = errors.New("request is not authenticated")
)

// Declared params errors. They are rendered in the {"error": "..."} form.
var (
	// ErrParameterMissing marks a required param that was not sent.
	ErrParameterMissing = errors.New("is missing")

	// ErrParameterInvalid marks a param whose JSON value is an object, an
	// array or null.
	ErrParameterInvalid = errors.New("is invalid")

	// ErrInvalidBody is returned when a JSON or form body cannot be parsed.
	ErrInvalidBody = errors.New("request body is invalid")
)

// ParamError reports a rejected declared param, e.g. "name is missing".
type ParamError struct {
	Name string
	Err  error
}

func (e *ParamError) Error() string {
	return e.Name + " " + e.Err.Error()
}

func (e *ParamError) Unwrap() error {
	return e.Err
}

// errRouteNotFound is rendered for a known path requested with an
// unregistered method.
var errRouteNotFound = errors.New("404 Not Found")
