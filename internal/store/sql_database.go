// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/MKhiriev/course-hub/internal/logger"
	"github.com/MKhiriev/course-hub/migrations"
)

// ErrorClassificator decides whether a failed database call may be repeated.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// retryDelays are the pauses between attempts of a retryable read.
var retryDelays = []time.Duration{time.Second, 3 * time.Second, 5 * time.Second}

type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate brings the document tables up to date.
func (db *DB) Migrate(ctx context.Context) error {
	applied, err := migrations.Migrate(ctx, db.DB)
	if err != nil {
		return err
	}
	if len(applied) > 0 {
		db.logger.Info().Ints64("versions", applied).Msg("migrations applied")
	}
	return nil
}

// queryWithRetry runs a read query and repeats it while the classifier
// reports the failure as transient. A nil classifier disables retries.
func (db *DB) queryWithRetry(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err == nil || db.errorClassificator == nil {
		return rows, err
	}

	for _, delay := range retryDelays {
		if db.errorClassificator.Classify(err) != Retryable {
			return nil, err
		}

		logger.FromContext(ctx).Warn().Err(err).Dur("delay", delay).Msg("retrying query")

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}

		rows, err = db.QueryContext(ctx, query, args...)
		if err == nil {
			return rows, nil
		}
	}

	return nil, err
}
