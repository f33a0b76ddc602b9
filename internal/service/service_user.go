// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/course-hub/internal/logger"
	"github.com/MKhiriev/course-hub/internal/store"
	"github.com/MKhiriev/course-hub/internal/validators"
	"github.com/MKhiriev/course-hub/models"
)

type userService struct {
	userRepository store.UserRepository
	validator      validators.Validator
	logger         *logger.Logger
}

func NewUserService(userRepository store.UserRepository, validator validators.Validator, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		validator:      validator,
		logger:         logger,
	}
}

func (s *userService) GetUser(ctx context.Context, uid string) (models.User, error) {
	user, err := s.userRepository.FindUserByUID(ctx, uid)
	if err != nil {
		return models.User{}, fmt.Errorf("error getting user: %w", err)
	}

	return user, nil
}

// MakeAdmin promotes the user with the requested email. Promotion is
// idempotent and never demotes.
func (s *userService) MakeAdmin(ctx context.Context, request models.MakeAdminRequest) error {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, request); err != nil {
		log.Error().Err(err).Msg("invalid make admin request")
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if err := s.userRepository.PromoteToAdmin(ctx, request.Email, request.AddedBy); err != nil {
		log.Err(err).Str("email", request.Email).Msg("error promoting user to admin")
		return fmt.Errorf("error promoting user to admin: %w", err)
	}

	log.Info().Str("email", request.Email).Str("added_by", request.AddedBy).Msg("user promoted to admin")
	return nil
}

func (s *userService) RequireAdmin(ctx context.Context, uid string) error {
	user, err := s.GetUser(ctx, uid)
	if err != nil {
		return err
	}
	if !user.IsAdmin {
		return ErrAdminRightsRequired
	}

	return nil
}
