// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/course-hub/internal/logger"
	"github.com/MKhiriev/course-hub/internal/utils"
	"github.com/MKhiriev/course-hub/models"
	"github.com/go-resty/resty/v2"
)

const accessTokenHeader = "x-access-token"

// HTTPClientConfig configures [NewHTTPCourseAPI].
type HTTPClientConfig struct {
	// Address is the server address, with or without scheme.
	Address string

	// Timeout bounds every request. Zero means no timeout.
	Timeout time.Duration
}

type httpCourseAPI struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPCourseAPI returns a [CourseAPI] talking to the server at
// cfg.Address. Returns an error if the address is empty or not a valid URL.
func NewHTTPCourseAPI(cfg HTTPClientConfig, logger *logger.Logger) (CourseAPI, error) {
	baseURL, err := normalizeBaseURL(cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid course api address: %w", err)
	}

	return &httpCourseAPI{
		client: utils.NewHTTPClient(baseURL, cfg.Timeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpCourseAPI) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpCourseAPI) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpCourseAPI) Login(ctx context.Context, user models.User) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/users")
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var auth models.AuthResponse
	if err = json.Unmarshal(resp.Body(), &auth); err != nil {
		return "", fmt.Errorf("decode login response: %w", err)
	}
	if !auth.Success || auth.Token == "" {
		return "", fmt.Errorf("%w: login returned no token", ErrUnexpectedResponse)
	}

	h.SetToken(auth.Token)
	h.logger.Debug().Str("uid", user.UID).Msg("logged in")
	return auth.Token, nil
}

func (h *httpCourseAPI) CurrentUser(ctx context.Context) (models.User, error) {
	resp, err := h.authedRequest(ctx).Get("/getUser")
	if err != nil {
		return models.User{}, fmt.Errorf("get user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var current models.CurrentUserResponse
	if err = json.Unmarshal(resp.Body(), &current); err != nil {
		return models.User{}, fmt.Errorf("decode user response: %w", err)
	}
	if !current.Auth || current.User == nil {
		return models.User{}, fmt.Errorf("%w: user is missing", ErrUnexpectedResponse)
	}

	return *current.User, nil
}

func (h *httpCourseAPI) MakeAdmin(ctx context.Context, request models.MakeAdminRequest) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		Post("/makeAdmin")
	if err != nil {
		return fmt.Errorf("make admin request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpCourseAPI) AddCourse(ctx context.Context, course models.Course) error {
	return h.postDocument(ctx, "/addCourse", course)
}

func (h *httpCourseAPI) Courses(ctx context.Context) ([]models.Course, error) {
	return h.getDocuments(ctx, "/courses")
}

func (h *httpCourseAPI) Course(ctx context.Context, id string) (models.Course, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("courseId", id).
		Get("/course/{courseId}")
	if err != nil {
		return nil, fmt.Errorf("get course request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var course models.Course
	if err = json.Unmarshal(resp.Body(), &course); err != nil {
		return nil, fmt.Errorf("decode course response: %w", err)
	}

	return course, nil
}

func (h *httpCourseAPI) DeleteCourse(ctx context.Context, id string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		Delete("/courses/{id}")
	if err != nil {
		return fmt.Errorf("delete course request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpCourseAPI) Enroll(ctx context.Context, enrollment models.Enrollment) error {
	return h.postDocument(ctx, "/enrollCourse", enrollment)
}

func (h *httpCourseAPI) EnrolledCourses(ctx context.Context) ([]models.Enrollment, error) {
	return h.getDocuments(ctx, "/enrolledCourses")
}

func (h *httpCourseAPI) ChangeEnrollStatus(ctx context.Context, request models.ChangeEnrollStatusRequest) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		Put("/changeEnrollStatus")
	if err != nil {
		return fmt.Errorf("change enroll status request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpCourseAPI) AddReview(ctx context.Context, review models.Review) error {
	return h.postDocument(ctx, "/addReview", review)
}

func (h *httpCourseAPI) Reviews(ctx context.Context) ([]models.Review, error) {
	return h.getDocuments(ctx, "/reviews")
}

func (h *httpCourseAPI) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

// postDocument sends doc to a route answering with a bare JSON boolean.
func (h *httpCourseAPI) postDocument(ctx context.Context, path string, doc models.Document) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(doc).
		Post(path)
	if err != nil {
		return fmt.Errorf("POST %s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	var ok bool
	if err = json.Unmarshal(resp.Body(), &ok); err != nil || !ok {
		return fmt.Errorf("%w: POST %s answered %q", ErrUnexpectedResponse, path, resp.String())
	}

	return nil
}

func (h *httpCourseAPI) getDocuments(ctx context.Context, path string) ([]models.Document, error) {
	resp, err := h.authedRequest(ctx).Get(path)
	if err != nil {
		return nil, fmt.Errorf("GET %s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	docs := []models.Document{}
	if err = json.Unmarshal(resp.Body(), &docs); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", path, err)
	}

	return docs, nil
}

func (h *httpCourseAPI) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader(accessTokenHeader, token)
	}
	return req
}
