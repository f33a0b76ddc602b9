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
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoReviewRepository struct {
	reviews *mongo.Collection
	logger  *logger.Logger
}

func NewMongoReviewRepository(reviews *mongo.Collection, logger *logger.Logger) ReviewRepository {
	logger.Debug().Msg("creating mongo review repository")
	return &mongoReviewRepository{reviews: reviews, logger: logger}
}

func (r *mongoReviewRepository) CreateReview(ctx context.Context, review models.Review) (models.Review, error) {
	created, err := insertMongoDocument(ctx, r.reviews, review)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoReviewRepository.CreateReview").Msg("error inserting review")
		return nil, err
	}

	return created, nil
}

func (r *mongoReviewRepository) GetReviews(ctx context.Context, limit int64) ([]models.Review, error) {
	log := logger.FromContext(ctx)

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.reviews.Find(ctx, bson.M{}, opts)
	if err != nil {
		log.Err(err).Str("func", "*mongoReviewRepository.GetReviews").Msg("error finding reviews")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	reviews, err := decodeMongoDocuments(ctx, cursor)
	if err != nil {
		log.Err(err).Str("func", "*mongoReviewRepository.GetReviews").Msg("error decoding reviews")
		return nil, err
	}

	return reviews, nil
}
