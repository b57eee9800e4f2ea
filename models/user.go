// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

const (
	UserStateActive  = "active"
	UserStateBlocked = "blocked"
)

// User is an account that can authenticate against the API.
type User struct {
	// UserID is the internal unique identifier of the user. It is the
	// subject of every issued token.
	UserID int64 `json:"id"`

	// Username is the unique handle of the user.
	Username string `json:"username"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Admin users bypass project membership checks.
	Admin bool `json:"-"`

	// State is either "active" or "blocked". Blocked users cannot
	// authenticate.
	State string `json:"state"`

	CreatedAt time.Time `json:"-"`
}

// IsBlocked reports whether the account was blocked.
func (u User) IsBlocked() bool {
	return u.State == UserStateBlocked
}
