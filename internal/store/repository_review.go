// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/course-hub/internal/logger"
	"github.com/MKhiriev/course-hub/models"
)

type reviewRepository struct {
	logger *logger.Logger
	db     *DB
	ids    IDGenerator
}

func NewReviewRepository(db *DB, ids IDGenerator, logger *logger.Logger) ReviewRepository {
	logger.Debug().Msg("creating review repository")
	return &reviewRepository{
		db:     db,
		ids:    ids,
		logger: logger,
	}
}

func (r *reviewRepository) CreateReview(ctx context.Context, review models.Review) (models.Review, error) {
	created, err := insertDocument(ctx, r.db, r.ids, reviewsTable, review)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*reviewRepository.CreateReview").Msg("error inserting review")
		return nil, err
	}

	return created, nil
}

func (r *reviewRepository) GetReviews(ctx context.Context, limit int64) ([]models.Review, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectReviewsQuery(limit)
	if err != nil {
		log.Err(err).Str("func", "*reviewRepository.GetReviews").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.queryWithRetry(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*reviewRepository.GetReviews").Msg("error selecting reviews")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	reviews, err := scanDocuments(rows)
	if err != nil {
		log.Err(err).Str("func", "*reviewRepository.GetReviews").Msg("error scanning reviews")
		return nil, err
	}

	return reviews, nil
}
