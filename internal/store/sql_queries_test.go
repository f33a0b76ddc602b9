// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildCreateUserQuery(t *testing.T) {
	query, args, err := buildCreateUserQuery("id-1", "u1", "a@b.c", "Alice", "", []byte(`[]`))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(query, "INSERT INTO users"))
	assert.Contains(t, query, "RETURNING id, uid")
	assert.Contains(t, query, "$7")
	assert.Equal(t, []any{"id-1", "u1", "a@b.c", "Alice", "", "[]", false}, args)
}

func Test_buildPromoteToAdminQuery_TouchesOneRow(t *testing.T) {
	query, args, err := buildPromoteToAdminQuery("a@b.c", "root")
	require.NoError(t, err)

	assert.Equal(t,
		"UPDATE users SET is_admin = $1, added_by = $2 WHERE id = (SELECT id FROM users WHERE email = $3 ORDER BY seq LIMIT 1)",
		query)
	assert.Equal(t, []any{true, "root", "a@b.c"}, args)
}

func Test_buildAppendEnrolledCourseQuery(t *testing.T) {
	query, args, err := buildAppendEnrolledCourseQuery("u1", "c1")
	require.NoError(t, err)

	assert.Equal(t,
		"UPDATE users SET enrolled_courses = enrolled_courses || jsonb_build_array($1::text) WHERE uid = $2",
		query)
	assert.Equal(t, []any{"c1", "u1"}, args)
}

func Test_buildSelectEnrollmentsQuery(t *testing.T) {
	tests := []struct {
		name      string
		owner     string
		wantQuery string
		wantArgs  []any
	}{
		{
			name:      "owner filter",
			owner:     "u1",
			wantQuery: "SELECT id, document FROM enrolls WHERE document -> 'currentUser' ->> 'uid' = $1 ORDER BY seq",
			wantArgs:  []any{"u1"},
		},
		{
			name:      "all enrollments",
			wantQuery: "SELECT id, document FROM enrolls ORDER BY seq",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildSelectEnrollmentsQuery(tt.owner)
			require.NoError(t, err)
			assert.Equal(t, tt.wantQuery, query)
			assert.Equal(t, len(tt.wantArgs), len(args))
			if len(tt.wantArgs) > 0 {
				assert.Equal(t, tt.wantArgs, args)
			}
		})
	}
}

func Test_buildUpdateEnrollmentStatusQuery(t *testing.T) {
	query, args, err := buildUpdateEnrollmentStatusQuery("e1", "Completed")
	require.NoError(t, err)

	assert.Equal(t,
		"UPDATE enrolls SET document = jsonb_set(document, '{course,status}', to_jsonb($1::text), true) WHERE id = $2",
		query)
	assert.Equal(t, []any{"Completed", "e1"}, args)
}

func Test_buildSelectReviewsQuery(t *testing.T) {
	query, _, err := buildSelectReviewsQuery(6)
	require.NoError(t, err)
	assert.Equal(t, "SELECT id, document FROM reviews ORDER BY seq LIMIT 6", query)

	query, _, err = buildSelectReviewsQuery(0)
	require.NoError(t, err)
	assert.NotContains(t, query, "LIMIT")
}

func Test_buildDeleteDocumentQuery(t *testing.T) {
	query, args, err := buildDeleteDocumentQuery(coursesTable, "c1")
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM courses WHERE id = $1 RETURNING id, document", query)
	assert.Equal(t, []any{"c1"}, args)
}
