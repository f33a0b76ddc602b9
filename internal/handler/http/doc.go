// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the course service.
//
// It wires chi routes for users, courses, enrollments and reviews, and the
// middleware chain every request passes through: CORS, trace id, access
// logging, gzip and panic recovery. Protected routes additionally pass the
// x-access-token check and, when enabled, the admin check.
package http
