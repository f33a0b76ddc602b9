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
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// mongoUser is the stored shape of [models.User].
type mongoUser struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	UID             string             `bson:"uid"`
	Email           string             `bson:"email,omitempty"`
	DisplayName     string             `bson:"displayName,omitempty"`
	PhotoURL        string             `bson:"photoURL,omitempty"`
	EnrolledCourses []string           `bson:"enrolledCourses"`
	IsAdmin         bool               `bson:"isAdmin"`
	AddedBy         string             `bson:"addedBy,omitempty"`
}

func (u mongoUser) toModel() models.User {
	enrolled := u.EnrolledCourses
	if enrolled == nil {
		enrolled = []string{}
	}

	return models.User{
		ID:              u.ID.Hex(),
		UID:             u.UID,
		Email:           u.Email,
		DisplayName:     u.DisplayName,
		PhotoURL:        u.PhotoURL,
		EnrolledCourses: enrolled,
		IsAdmin:         u.IsAdmin,
		AddedBy:         u.AddedBy,
	}
}

// mongoUserRepository is the MongoDB-backed [UserRepository].
type mongoUserRepository struct {
	users  *mongo.Collection
	logger *logger.Logger
}

func NewMongoUserRepository(users *mongo.Collection, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating mongo user repository")
	return &mongoUserRepository{users: users, logger: logger}
}

func (r *mongoUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	stored := mongoUser{
		ID:              primitive.NewObjectID(),
		UID:             user.UID,
		Email:           user.Email,
		DisplayName:     user.DisplayName,
		PhotoURL:        user.PhotoURL,
		EnrolledCourses: nonNilStrings(user.EnrolledCourses),
	}

	if _, err := r.users.InsertOne(ctx, stored); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.User{}, ErrUIDAlreadyExists
		}

		log.Err(err).Str("func", "*mongoUserRepository.CreateUser").Msg("error inserting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return stored.toModel(), nil
}

func (r *mongoUserRepository) FindUserByUID(ctx context.Context, uid string) (models.User, error) {
	var found mongoUser

	err := r.users.FindOne(ctx, bson.M{"uid": uid}).Decode(&found)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.User{}, ErrUserNotFound
		}

		logger.FromContext(ctx).Err(err).Str("func", "*mongoUserRepository.FindUserByUID").Msg("error finding user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return found.toModel(), nil
}

func (r *mongoUserRepository) PromoteToAdmin(ctx context.Context, email, addedBy string) error {
	update := bson.M{"$set": bson.M{"isAdmin": true, "addedBy": addedBy}}

	result, err := r.users.UpdateOne(ctx, bson.M{"email": email}, update)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoUserRepository.PromoteToAdmin").Msg("error promoting user")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if result.MatchedCount == 0 {
		return ErrUserNotFound
	}

	return nil
}
