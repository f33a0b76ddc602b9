// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/course-hub/internal/logger"
	"github.com/MKhiriev/course-hub/internal/store"
	"github.com/MKhiriev/course-hub/models"
)

// ReviewsLimit caps the number of reviews returned by ListReviews.
const ReviewsLimit = 6

type reviewService struct {
	reviewRepository store.ReviewRepository
	logger           *logger.Logger
}

func NewReviewService(reviewRepository store.ReviewRepository, logger *logger.Logger) ReviewService {
	return &reviewService{
		reviewRepository: reviewRepository,
		logger:           logger,
	}
}

func (s *reviewService) AddReview(ctx context.Context, review models.Review) (models.Review, error) {
	if review == nil {
		review = models.Review{}
	}

	created, err := s.reviewRepository.CreateReview(ctx, review)
	if err != nil {
		return nil, fmt.Errorf("error adding review: %w", err)
	}

	return created, nil
}

func (s *reviewService) ListReviews(ctx context.Context) ([]models.Review, error) {
	reviews, err := s.reviewRepository.GetReviews(ctx, ReviewsLimit)
	if err != nil {
		return nil, fmt.Errorf("error listing reviews: %w", err)
	}
	if reviews == nil {
		reviews = []models.Review{}
	}

	return reviews, nil
}
