// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/course-hub/internal/config"
	"github.com/MKhiriev/course-hub/internal/logger"
	"github.com/MKhiriev/course-hub/internal/store"
	"github.com/MKhiriev/course-hub/internal/validators"
)

type Services struct {
	AuthService       AuthService
	UserService       UserService
	CourseService     CourseService
	EnrollmentService EnrollmentService
	ReviewService     ReviewService
	AppInfoService    AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	validator := validators.NewRequestValidator()

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:       NewAuthService(storages.UserRepository, validator, cfg.App, logger),
		UserService:       NewUserService(storages.UserRepository, validator, logger),
		CourseService:     NewCourseService(storages.CourseRepository, logger),
		EnrollmentService: NewEnrollmentService(storages.EnrollmentRepository, storages.UserRepository, validator, logger),
		ReviewService:     NewReviewService(storages.ReviewRepository, logger),
		AppInfoService:    appInfoService,
	}, nil
}
