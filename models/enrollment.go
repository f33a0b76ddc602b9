// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Well-known keys of an enrollment document.
const (
	EnrollmentCourseKey      = "course"
	EnrollmentCurrentUserKey = "currentUser"
	CourseStatusKey          = "status"
	CurrentUserUIDKey        = "uid"
)

// EnrollmentStatusOngoing is the status every freshly created enrollment
// starts with.
const EnrollmentStatusOngoing = "Ongoing"

// EnrollmentCourse returns the embedded course snapshot of an enrollment.
func EnrollmentCourse(e Enrollment) (Course, bool) {
	return e.Object(EnrollmentCourseKey)
}

// EnrollmentOwner returns currentUser.uid of an enrollment, or "".
func EnrollmentOwner(e Enrollment) string {
	currentUser, ok := e.Object(EnrollmentCurrentUserKey)
	if !ok {
		return ""
	}
	return currentUser.StringField(CurrentUserUIDKey)
}

// ChangeEnrollStatusRequest is the body of PUT /changeEnrollStatus.
type ChangeEnrollStatusRequest struct {
	// EnrollID is the identifier of the enrollment document to update.
	EnrollID string `json:"enrollId" validate:"required"`

	// Status is the new value of course.status. Free-form.
	Status string `json:"status"`
}
