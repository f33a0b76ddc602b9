// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/course-hub/internal/config"
	"github.com/MKhiriev/course-hub/internal/logger"
	"github.com/MKhiriev/course-hub/internal/store"
	"github.com/MKhiriev/course-hub/internal/utils"
	"github.com/MKhiriev/course-hub/internal/validators"
	"github.com/MKhiriev/course-hub/models"
)

// authService is the concrete implementation of AuthService.
// Identity is trust-on-first-use: whoever presents a uid owns it. The
// service turns a uid into a user record and JWT tokens.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	validator validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid. New
	// and returning users get the same lifetime.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, validator validators.Validator, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		validator:      validator,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// RegisterOrLogin looks the user up by uid and creates it when absent.
//
// A concurrent registration of the same uid loses the insert race with
// store.ErrUIDAlreadyExists; the winner's record is then read back, so a uid
// never maps to two users.
//
// Returns ErrInvalidDataProvided when uid is empty.
func (a *authService) RegisterOrLogin(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, user, validators.FieldUID); err != nil {
		log.Error().Err(err).Msg("invalid user data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	found, err := a.userRepository.FindUserByUID(ctx, user.UID)
	if err == nil {
		return found, nil
	}
	if !errors.Is(err, store.ErrUserNotFound) {
		log.Err(err).Str("uid", user.UID).Msg("user search by uid failed")
		return models.User{}, fmt.Errorf("user search by uid failed: %w", err)
	}

	user.ID = ""
	user.EnrolledCourses = []string{}
	user.IsAdmin = false
	user.AddedBy = ""

	created, err := a.userRepository.CreateUser(ctx, user)
	switch {
	case err == nil:
		log.Info().Str("uid", created.UID).Msg("new user registered")
		return created, nil
	case errors.Is(err, store.ErrUIDAlreadyExists):
		log.Debug().Str("uid", user.UID).Msg("uid registered concurrently, reading existing user")
		return a.userRepository.FindUserByUID(ctx, user.UID)
	default:
		log.Err(err).Str("uid", user.UID).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("uid", user.UID).Msg("token creation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, bad signature, malformed) is
// normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
