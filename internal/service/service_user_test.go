// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/course-hub/internal/logger"
	"github.com/MKhiriev/course-hub/internal/mock"
	"github.com/MKhiriev/course-hub/internal/store"
	"github.com/MKhiriev/course-hub/internal/validators"
	"github.com/MKhiriev/course-hub/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestUserSvc(t *testing.T) (UserService, *mock.MockUserRepository) {
	t.Helper()
	users := mock.NewMockUserRepository(gomock.NewController(t))
	return NewUserService(users, validators.NewRequestValidator(), logger.Nop()), users
}

func TestGetUser(t *testing.T) {
	svc, users := newTestUserSvc(t)
	ctx := context.Background()

	users.EXPECT().FindUserByUID(ctx, "u1").Return(models.User{UID: "u1"}, nil)
	users.EXPECT().FindUserByUID(ctx, "ghost").Return(models.User{}, store.ErrUserNotFound)

	user, err := svc.GetUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.UID)

	_, err = svc.GetUser(ctx, "ghost")
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestMakeAdmin(t *testing.T) {
	tests := []struct {
		name     string
		request  models.MakeAdminRequest
		repoErr  error
		callRepo bool
		wantErr  error
	}{
		{name: "promoted", request: models.MakeAdminRequest{Email: "a@b.c", AddedBy: "root"}, callRepo: true},
		{name: "no such email", request: models.MakeAdminRequest{Email: "x@b.c"}, callRepo: true, repoErr: store.ErrUserNotFound, wantErr: store.ErrUserNotFound},
		{name: "store failure", request: models.MakeAdminRequest{Email: "a@b.c"}, callRepo: true, repoErr: store.ErrExecutingQuery, wantErr: store.ErrExecutingQuery},
		{name: "missing email", request: models.MakeAdminRequest{AddedBy: "root"}, wantErr: ErrInvalidDataProvided},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, users := newTestUserSvc(t)
			ctx := context.Background()

			if tt.callRepo {
				users.EXPECT().PromoteToAdmin(ctx, tt.request.Email, tt.request.AddedBy).Return(tt.repoErr)
			}

			err := svc.MakeAdmin(ctx, tt.request)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	svc, users := newTestUserSvc(t)
	ctx := context.Background()

	users.EXPECT().FindUserByUID(ctx, "admin").Return(models.User{UID: "admin", IsAdmin: true}, nil)
	users.EXPECT().FindUserByUID(ctx, "student").Return(models.User{UID: "student"}, nil)
	users.EXPECT().FindUserByUID(ctx, "ghost").Return(models.User{}, store.ErrUserNotFound)

	assert.NoError(t, svc.RequireAdmin(ctx, "admin"))
	assert.ErrorIs(t, svc.RequireAdmin(ctx, "student"), ErrAdminRightsRequired)
	assert.ErrorIs(t, svc.RequireAdmin(ctx, "ghost"), store.ErrUserNotFound)
}
