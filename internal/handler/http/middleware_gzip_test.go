// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func gunzipBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	zr, err := gzip.NewReader(bytes.NewReader(data))
	require.NoError(t, err)
	out, err := io.ReadAll(zr)
	require.NoError(t, err)
	return out
}

// echoHandler answers with the request body, or a fixed course list.
var echoHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	if len(body) == 0 {
		body = []byte(`[{"_id":"c1"}]`)
	}
	_, _ = w.Write(body)
})

func TestGZip(t *testing.T) {
	tests := []struct {
		name           string
		acceptEncoding string
		requestBody    []byte
		gzipRequest    bool
		wantGzipped    bool
		wantBody       string
	}{
		{name: "plain", wantBody: `[{"_id":"c1"}]`},
		{name: "compressed response", acceptEncoding: "gzip", wantGzipped: true, wantBody: `[{"_id":"c1"}]`},
		{name: "gzip among encodings", acceptEncoding: "deflate, gzip;q=1.0, br", wantGzipped: true, wantBody: `[{"_id":"c1"}]`},
		{name: "compressed request", requestBody: []byte(`{"uid":"u1"}`), gzipRequest: true, wantBody: `{"uid":"u1"}`},
		{
			name:           "compressed both ways",
			acceptEncoding: "gzip",
			requestBody:    []byte(`{"uid":"u1"}`),
			gzipRequest:    true,
			wantGzipped:    true,
			wantBody:       `{"uid":"u1"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := tt.requestBody
			if tt.gzipRequest {
				body = gzipBytes(t, body)
			}

			req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader(body))
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			if tt.gzipRequest {
				req.Header.Set("Content-Encoding", "gzip")
			}

			rr := httptest.NewRecorder()
			withGZip(echoHandler).ServeHTTP(rr, req)

			require.Equal(t, http.StatusOK, rr.Code)
			got := rr.Body.Bytes()
			if tt.wantGzipped {
				assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
				got = gunzipBytes(t, got)
			} else {
				assert.Empty(t, rr.Header().Get("Content-Encoding"))
			}
			assert.Equal(t, tt.wantBody, string(got))
		})
	}
}

func TestGZip_InvalidRequestBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewBufferString("not gzip"))
	req.Header.Set("Content-Encoding", "gzip")

	rr := httptest.NewRecorder()
	withGZip(echoHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGZip_StatusIsKept(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("true"))
	})

	req := httptest.NewRequest(http.MethodPost, "/addCourse", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()
	withGZip(handler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "true", string(gunzipBytes(t, rr.Body.Bytes())))
}

func TestGZip_HeaderOnlyResponse(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	req := httptest.NewRequest(http.MethodGet, "/course/nope", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()
	withGZip(handler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Empty(t, rr.Body.Bytes())
}

func TestWrappedReadCloser_Close(t *testing.T) {
	var closed bool
	rc := &wrappedReadCloser{Reader: bytes.NewReader(nil), OnClose: func() { closed = true }}

	require.NoError(t, rc.Close())
	assert.True(t, closed)

	assert.NoError(t, (&wrappedReadCloser{Reader: bytes.NewReader(nil)}).Close())
}
