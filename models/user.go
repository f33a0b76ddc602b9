// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User is an account identified by the client-supplied uid.
//
// There is no credential: the first POST /users with a given uid creates the
// account and every later call logs into it.
type User struct {
	// ID is the store-assigned identifier of the user document.
	ID string `json:"_id,omitempty"`

	// UID is the external identity key (e.g. the auth provider's user id).
	// Unique across all users.
	UID string `json:"uid" validate:"required"`

	// Email is used as the lookup key when promoting a user to admin.
	Email string `json:"email,omitempty"`

	// DisplayName is the human-readable name shown in the UI.
	DisplayName string `json:"displayName,omitempty"`

	// PhotoURL is the avatar supplied by the auth provider.
	PhotoURL string `json:"photoURL,omitempty"`

	// EnrolledCourses lists course ids in enrollment order.
	// Always serialized as an array, never as null.
	EnrolledCourses []string `json:"enrolledCourses"`

	// IsAdmin grants access to the admin views of the client.
	IsAdmin bool `json:"isAdmin"`

	// AddedBy records who promoted the user to admin.
	AddedBy string `json:"addedBy,omitempty"`
}

// TableName returns the name of the table/collection holding users.
func (u User) TableName() string {
	return "users"
}

// MakeAdminRequest is the body of POST /makeAdmin.
type MakeAdminRequest struct {
	Email   string `json:"email" validate:"required"`
	AddedBy string `json:"addedBy"`
}
