// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// DocumentIDKey is the key under which every stored document exposes its
// store-assigned identifier. The name matches what the web client expects.
const DocumentIDKey = "_id"

// Document is a schemaless JSON object stored as-is in one of the
// collections (courses, enrolls, reviews).
//
// Only a handful of keys carry meaning for the server: "_id" for every
// document, "course" and "currentUser" for enrollments. Everything else is
// owned by the client and round-trips untouched.
type Document map[string]any

// Course is a course document. The server reads only "_id" and "status".
type Course = Document

// Review is a review document. The server never inspects its fields.
type Review = Document

// Enrollment is a document pairing a course snapshot ("course") with the
// enrolling user's context ("currentUser").
type Enrollment = Document

// ID returns the document identifier in its string form, or "" when the
// document has none.
func (d Document) ID() string {
	switch id := d[DocumentIDKey].(type) {
	case nil:
		return ""
	case string:
		return id
	case interface{ Hex() string }:
		return id.Hex()
	default:
		return fmt.Sprint(id)
	}
}

// WithID stores id under [DocumentIDKey] and returns the same document.
func (d Document) WithID(id string) Document {
	d[DocumentIDKey] = id
	return d
}

// WithoutID returns a shallow copy of d without the "_id" key. Stores use it
// to keep the identifier out of the persisted body.
func (d Document) WithoutID() Document {
	out := make(Document, len(d))
	for k, v := range d {
		if k == DocumentIDKey {
			continue
		}
		out[k] = v
	}
	return out
}

// Object returns the nested object stored under key.
func (d Document) Object(key string) (Document, bool) {
	switch v := d[key].(type) {
	case Document:
		return v, true
	case map[string]any:
		return Document(v), true
	default:
		return nil, false
	}
}

// StringField returns the value stored under key when it is a string.
func (d Document) StringField(key string) string {
	s, _ := d[key].(string)
	return s
}

// Clone returns a shallow copy of d. Nested objects are shared.
func (d Document) Clone() Document {
	out := make(Document, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}
