// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/course-hub/internal/logger"
	"github.com/MKhiriev/course-hub/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// mongoEnrollmentRepository is the MongoDB-backed [EnrollmentRepository].
// Enroll is not atomic: the course id is appended to the user first and the
// enrollment is inserted afterwards.
type mongoEnrollmentRepository struct {
	users   *mongo.Collection
	enrolls *mongo.Collection
	logger  *logger.Logger
}

func NewMongoEnrollmentRepository(users, enrolls *mongo.Collection, logger *logger.Logger) EnrollmentRepository {
	logger.Debug().Msg("creating mongo enrollment repository")
	return &mongoEnrollmentRepository{users: users, enrolls: enrolls, logger: logger}
}

// Enroll pushes courseID to the user's enrolledCourses, then inserts the
// enrollment. If the insert fails the push stays in place and is logged.
func (r *mongoEnrollmentRepository) Enroll(ctx context.Context, uid, courseID string, enrollment models.Enrollment) (models.Enrollment, error) {
	log := logger.FromContext(ctx)

	result, err := r.users.UpdateOne(ctx, bson.M{"uid": uid}, bson.M{"$push": bson.M{"enrolledCourses": courseID}})
	if err != nil {
		log.Err(err).Str("func", "*mongoEnrollmentRepository.Enroll").Msg("error appending enrolled course")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if result.MatchedCount == 0 {
		return nil, ErrUserNotFound
	}

	created, err := insertMongoDocument(ctx, r.enrolls, enrollment)
	if err != nil {
		log.Err(err).
			Str("func", "*mongoEnrollmentRepository.Enroll").
			Str("uid", uid).
			Str("course_id", courseID).
			Msg("enrollment was not inserted after the course id was appended to the user")
		return nil, err
	}

	return created, nil
}

func (r *mongoEnrollmentRepository) GetEnrollments(ctx context.Context, ownerUID string) ([]models.Enrollment, error) {
	log := logger.FromContext(ctx)

	filter := bson.M{}
	if ownerUID != "" {
		filter = bson.M{models.EnrollmentCurrentUserKey + "." + models.CurrentUserUIDKey: ownerUID}
	}

	cursor, err := r.enrolls.Find(ctx, filter)
	if err != nil {
		log.Err(err).Str("func", "*mongoEnrollmentRepository.GetEnrollments").Msg("error finding enrollments")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	enrollments, err := decodeMongoDocuments(ctx, cursor)
	if err != nil {
		log.Err(err).Str("func", "*mongoEnrollmentRepository.GetEnrollments").Msg("error decoding enrollments")
		return nil, err
	}

	return enrollments, nil
}

func (r *mongoEnrollmentRepository) UpdateEnrollmentStatus(ctx context.Context, enrollID, status string) error {
	oid, err := objectIDFromHex(enrollID, ErrEnrollmentNotFound)
	if err != nil {
		return err
	}

	field := models.EnrollmentCourseKey + "." + models.CourseStatusKey
	result, err := r.enrolls.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{field: status}})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoEnrollmentRepository.UpdateEnrollmentStatus").Msg("error updating enrollment")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if result.MatchedCount == 0 {
		return ErrEnrollmentNotFound
	}

	return nil
}
