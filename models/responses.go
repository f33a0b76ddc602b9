// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Response bodies of the REST API. Their shapes are relied upon by the web
// client and must not change.

// AuthResponse is returned by POST /users.
type AuthResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token,omitempty"`
}

// CurrentUserResponse is returned by GET /getUser.
type CurrentUserResponse struct {
	Auth bool  `json:"auth"`
	User *User `json:"user,omitempty"`
}

// OperationResponse is returned by POST /makeAdmin.
type OperationResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// DeleteResponse is returned by DELETE /courses/{id}.
type DeleteResponse struct {
	Deleted bool   `json:"deleted"`
	Message string `json:"message"`
}

// MessageResponse is returned when a request is rejected before reaching a
// handler (missing or invalid token, insufficient rights).
type MessageResponse struct {
	Message string `json:"message"`
}
