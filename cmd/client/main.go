// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command client is a smoke check for a running course-hub server: it logs
// in, lists courses and reviews, and prints the caller's enrollments.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/course-hub/internal/adapter"
	"github.com/MKhiriev/course-hub/internal/logger"
	"github.com/MKhiriev/course-hub/models"
)

func main() {
	log := logger.NewLogger("course-hub-client")

	flagSet := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	address := flagSet.String("a", "localhost:5000", "course-hub server address")
	uid := flagSet.String("uid", "", "uid to log in with")
	email := flagSet.String("email", "", "email sent on first login")
	timeout := flagSet.Duration("t", 10*time.Second, "request timeout")
	_ = flagSet.Parse(os.Args[1:])

	api, err := adapter.NewHTTPCourseAPI(adapter.HTTPClientConfig{Address: *address, Timeout: *timeout}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create course api client")
	}

	ctx := context.Background()

	version, err := api.Version(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("server is not reachable")
	}
	fmt.Printf("server version: %s\n", version)

	courses, err := api.Courses(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("list courses")
	}
	fmt.Printf("courses: %d\n", len(courses))
	for _, course := range courses {
		fmt.Printf("  %s  %s\n", course.ID(), course.StringField("title"))
	}

	reviews, err := api.Reviews(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("list reviews")
	}
	fmt.Printf("reviews: %d\n", len(reviews))

	if *uid == "" {
		return
	}

	if _, err = api.Login(ctx, models.User{UID: *uid, Email: *email}); err != nil {
		log.Fatal().Err(err).Msg("login")
	}

	user, err := api.CurrentUser(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("get current user")
	}
	fmt.Printf("user %s admin=%t enrolled=%v\n", user.UID, user.IsAdmin, user.EnrolledCourses)

	enrollments, err := api.EnrolledCourses(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("list enrollments")
	}
	for _, enrollment := range enrollments {
		course, _ := models.EnrollmentCourse(enrollment)
		fmt.Printf("  %s  %s  %s\n", enrollment.ID(), course.StringField("title"), course.StringField(models.CourseStatusKey))
	}
}
