// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/course-hub/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// insertMongoDocument stores doc under a new ObjectID and returns a copy
// carrying its hex form. A client-supplied "_id" is discarded.
func insertMongoDocument(ctx context.Context, coll *mongo.Collection, doc models.Document) (models.Document, error) {
	body := bson.M(doc.WithoutID())
	oid := primitive.NewObjectID()
	body[models.DocumentIDKey] = oid

	if _, err := coll.InsertOne(ctx, body); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return doc.WithoutID().WithID(oid.Hex()), nil
}

func decodeMongoDocuments(ctx context.Context, cursor *mongo.Cursor) ([]models.Document, error) {
	var raw []bson.M
	if err := cursor.All(ctx, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	docs := make([]models.Document, 0, len(raw))
	for _, r := range raw {
		docs = append(docs, normalizeDocument(r))
	}

	return docs, nil
}

// normalizeDocument turns a decoded BSON document into plain JSON-friendly
// values: nested documents become [models.Document], arrays become []any and
// ObjectIDs become hex strings.
func normalizeDocument(m bson.M) models.Document {
	doc := make(models.Document, len(m))
	for k, v := range m {
		doc[k] = normalizeValue(v)
	}
	return doc
}

func normalizeValue(v any) any {
	switch val := v.(type) {
	case bson.M:
		return normalizeDocument(val)
	case map[string]any:
		return normalizeDocument(val)
	case bson.D:
		doc := make(models.Document, len(val))
		for _, e := range val {
			doc[e.Key] = normalizeValue(e.Value)
		}
		return doc
	case bson.A:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = normalizeValue(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = normalizeValue(item)
		}
		return out
	case primitive.ObjectID:
		return val.Hex()
	case primitive.DateTime:
		return val.Time().UTC()
	default:
		return v
	}
}

// objectIDFromHex parses id; malformed ids are reported as notFound.
func objectIDFromHex(id string, notFound error) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, notFound
	}
	return oid, nil
}
