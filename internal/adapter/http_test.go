// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/course-hub/internal/config"
	myHTTP "github.com/MKhiriev/course-hub/internal/handler/http"
	"github.com/MKhiriev/course-hub/internal/logger"
	"github.com/MKhiriev/course-hub/internal/mock"
	"github.com/MKhiriev/course-hub/internal/service"
	"github.com/MKhiriev/course-hub/internal/store"
	"github.com/MKhiriev/course-hub/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testServer struct {
	api        CourseAPI
	auth       *mock.MockAuthService
	user       *mock.MockUserService
	course     *mock.MockCourseService
	enrollment *mock.MockEnrollmentService
	review     *mock.MockReviewService
	appInfo    *mock.MockAppInfoService
}

// newTestServer serves the real router over service mocks.
func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ctrl := gomock.NewController(t)

	ts := &testServer{
		auth:       mock.NewMockAuthService(ctrl),
		user:       mock.NewMockUserService(ctrl),
		course:     mock.NewMockCourseService(ctrl),
		enrollment: mock.NewMockEnrollmentService(ctrl),
		review:     mock.NewMockReviewService(ctrl),
		appInfo:    mock.NewMockAppInfoService(ctrl),
	}
	services := &service.Services{
		AuthService:       ts.auth,
		UserService:       ts.user,
		CourseService:     ts.course,
		EnrollmentService: ts.enrollment,
		ReviewService:     ts.review,
		AppInfoService:    ts.appInfo,
	}

	handler := myHTTP.NewHandler(services, config.Server{}, config.App{}, logger.Nop())
	srv := httptest.NewServer(handler.Init())
	t.Cleanup(srv.Close)

	api, err := NewHTTPCourseAPI(HTTPClientConfig{Address: srv.URL}, logger.Nop())
	require.NoError(t, err)
	ts.api = api

	return ts
}

func (ts *testServer) login(t *testing.T, uid string) {
	t.Helper()
	user := models.User{UID: uid}
	ts.auth.EXPECT().RegisterOrLogin(gomock.Any(), user).Return(user, nil)
	ts.auth.EXPECT().CreateToken(gomock.Any(), user).Return(models.Token{SignedString: "jwt-" + uid}, nil)

	token, err := ts.api.Login(context.Background(), user)
	require.NoError(t, err)
	require.Equal(t, "jwt-"+uid, token)

	ts.auth.EXPECT().ParseToken(gomock.Any(), "jwt-"+uid).Return(models.Token{UID: uid}, nil).AnyTimes()
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "localhost:5000", want: "http://localhost:5000"},
		{raw: " https://courses.example/ ", want: "https://courses.example"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoginAndCurrentUser(t *testing.T) {
	ts := newTestServer(t)
	ts.login(t, "u1")
	assert.Equal(t, "jwt-u1", ts.api.Token())

	ts.user.EXPECT().GetUser(gomock.Any(), "u1").
		Return(models.User{ID: "id-1", UID: "u1", EnrolledCourses: []string{}}, nil)

	user, err := ts.api.CurrentUser(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "u1", user.UID)
	assert.Equal(t, []string{}, user.EnrolledCourses)
}

func TestCurrentUser_WithoutToken(t *testing.T) {
	ts := newTestServer(t)

	_, err := ts.api.CurrentUser(context.Background())

	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestCourses(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()
	ts.login(t, "admin")

	ts.course.EXPECT().AddCourse(gomock.Any(), models.Course{"title": "Go"}).
		Return(models.Course{"_id": "c1", "title": "Go"}, nil)
	require.NoError(t, ts.api.AddCourse(ctx, models.Course{"title": "Go"}))

	ts.course.EXPECT().ListCourses(gomock.Any()).Return([]models.Course{{"_id": "c1", "title": "Go"}}, nil)
	courses, err := ts.api.Courses(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Course{{"_id": "c1", "title": "Go"}}, courses)

	ts.course.EXPECT().GetCourse(gomock.Any(), "c1").Return(models.Course{"_id": "c1", "title": "Go"}, nil)
	course, err := ts.api.Course(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "c1", course.ID())

	ts.course.EXPECT().GetCourse(gomock.Any(), "nope").Return(nil, store.ErrCourseNotFound)
	_, err = ts.api.Course(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)

	ts.course.EXPECT().DeleteCourse(gomock.Any(), "c1").Return(models.Course{"_id": "c1"}, nil)
	require.NoError(t, ts.api.DeleteCourse(ctx, "c1"))

	ts.course.EXPECT().DeleteCourse(gomock.Any(), "c1").Return(nil, fmt.Errorf("delete: %w", store.ErrCourseNotFound))
	assert.ErrorIs(t, ts.api.DeleteCourse(ctx, "c1"), ErrNotFound)
}

func TestEnrollments(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()
	ts.login(t, "u1")

	enrollment := models.Enrollment{"course": map[string]any{"_id": "c1"}}
	ts.enrollment.EXPECT().Enroll(gomock.Any(), "u1", enrollment).Return(enrollment, nil)
	require.NoError(t, ts.api.Enroll(ctx, enrollment))

	ts.enrollment.EXPECT().Enroll(gomock.Any(), "u1", models.Enrollment{}).
		Return(nil, fmt.Errorf("%w: course", service.ErrInvalidDataProvided))
	assert.ErrorIs(t, ts.api.Enroll(ctx, models.Enrollment{}), ErrBadRequest)

	ts.enrollment.EXPECT().EnrolledCourses(gomock.Any(), "u1").Return([]models.Enrollment{}, nil)
	enrolled, err := ts.api.EnrolledCourses(ctx)
	require.NoError(t, err)
	assert.Empty(t, enrolled)

	request := models.ChangeEnrollStatusRequest{EnrollID: "e1", Status: "Completed"}
	ts.enrollment.EXPECT().ChangeStatus(gomock.Any(), request).Return(store.ErrEnrollmentNotFound)
	assert.ErrorIs(t, ts.api.ChangeEnrollStatus(ctx, request), ErrNotFound)
}

func TestMakeAdmin(t *testing.T) {
	ts := newTestServer(t)
	ts.login(t, "admin")

	request := models.MakeAdminRequest{Email: "a@b.c", AddedBy: "admin@b.c"}
	ts.user.EXPECT().MakeAdmin(gomock.Any(), request).Return(nil)

	assert.NoError(t, ts.api.MakeAdmin(context.Background(), request))
}

func TestReviewsAndVersion(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()

	ts.review.EXPECT().AddReview(gomock.Any(), models.Review{"text": "great"}).Return(models.Review{"_id": "r1"}, nil)
	require.NoError(t, ts.api.AddReview(ctx, models.Review{"text": "great"}))

	ts.review.EXPECT().ListReviews(gomock.Any()).Return([]models.Review{{"_id": "r1", "text": "great"}}, nil)
	reviews, err := ts.api.Reviews(ctx)
	require.NoError(t, err)
	assert.Len(t, reviews, 1)

	ts.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.3")
	version, err := ts.api.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, "1.2.3", version)
}
