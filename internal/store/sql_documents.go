// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/course-hub/models"
)

// IDGenerator hands out identifiers for new rows.
type IDGenerator interface {
	Generate() string
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// insertDocument stores doc under a freshly generated id in table and
// returns a copy carrying that id. A client-supplied "_id" is discarded.
func insertDocument(ctx context.Context, db execer, ids IDGenerator, table string, doc models.Document) (models.Document, error) {
	body := doc.WithoutID()

	encoded, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingDocument, err)
	}

	id := ids.Generate()
	query, args, err := buildInsertDocumentQuery(table, id, encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = db.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return body.WithID(id), nil
}

func scanDocument(row rowScanner) (models.Document, error) {
	var (
		id   string
		body []byte
	)
	if err := row.Scan(&id, &body); err != nil {
		return nil, err
	}

	return decodeDocument(id, body)
}

// scanDocuments reads every row and closes rows. The result is never nil.
func scanDocuments(rows *sql.Rows) ([]models.Document, error) {
	defer rows.Close()

	docs := make([]models.Document, 0)
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		docs = append(docs, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return docs, nil
}

func decodeDocument(id string, body []byte) (models.Document, error) {
	doc := models.Document{}
	if len(body) > 0 {
		if err := json.Unmarshal(body, &doc); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrEncodingDocument, err)
		}
		if doc == nil {
			doc = models.Document{}
		}
	}

	return doc.WithID(id), nil
}
