// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/course-hub/internal/logger"
	"github.com/MKhiriev/course-hub/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoCourseRepository struct {
	courses *mongo.Collection
	logger  *logger.Logger
}

func NewMongoCourseRepository(courses *mongo.Collection, logger *logger.Logger) CourseRepository {
	logger.Debug().Msg("creating mongo course repository")
	return &mongoCourseRepository{courses: courses, logger: logger}
}

func (r *mongoCourseRepository) CreateCourse(ctx context.Context, course models.Course) (models.Course, error) {
	created, err := insertMongoDocument(ctx, r.courses, course)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoCourseRepository.CreateCourse").Msg("error inserting course")
		return nil, err
	}

	return created, nil
}

func (r *mongoCourseRepository) GetAllCourses(ctx context.Context) ([]models.Course, error) {
	log := logger.FromContext(ctx)

	cursor, err := r.courses.Find(ctx, bson.M{})
	if err != nil {
		log.Err(err).Str("func", "*mongoCourseRepository.GetAllCourses").Msg("error finding courses")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	courses, err := decodeMongoDocuments(ctx, cursor)
	if err != nil {
		log.Err(err).Str("func", "*mongoCourseRepository.GetAllCourses").Msg("error decoding courses")
		return nil, err
	}

	return courses, nil
}

func (r *mongoCourseRepository) GetCourse(ctx context.Context, id string) (models.Course, error) {
	oid, err := objectIDFromHex(id, ErrCourseNotFound)
	if err != nil {
		return nil, err
	}

	var raw bson.M
	if err = r.courses.FindOne(ctx, bson.M{"_id": oid}).Decode(&raw); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCourseNotFound
		}

		logger.FromContext(ctx).Err(err).Str("func", "*mongoCourseRepository.GetCourse").Msg("error finding course")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return normalizeDocument(raw), nil
}

func (r *mongoCourseRepository) DeleteCourse(ctx context.Context, id string) (models.Course, error) {
	oid, err := objectIDFromHex(id, ErrCourseNotFound)
	if err != nil {
		return nil, err
	}

	var raw bson.M
	if err = r.courses.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&raw); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCourseNotFound
		}

		logger.FromContext(ctx).Err(err).Str("func", "*mongoCourseRepository.DeleteCourse").Msg("error deleting course")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return normalizeDocument(raw), nil
}
