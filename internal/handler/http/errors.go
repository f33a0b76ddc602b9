// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrNoAccessToken is logged by the auth middleware when a request on a
// protected route carries no "x-access-token" header.
var ErrNoAccessToken = errors.New("empty `x-access-token` header")

// Response messages the web client matches on.
const (
	MessageNoToken       = "No token found!"
	MessageTokenMismatch = "token doesn't match!"
	MessageAdminRequired = "Admin rights required!"

	MessagePromotionSucceeded = "Success"
	MessagePromotionFailed    = "Something went wrong! please try again!"

	MessageCourseDeleted      = "Successfully deleted course: %s."
	MessageCourseNotFound     = "No course matches the provided id."
	MessageCourseDeleteFailed = "Failed to find and delete course: %s"
)
