//go:build unit || e2e

package httptest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

// PerformRequest sends body as JSON, with a bearer token when authToken is set.
func PerformRequest(t *testing.T, router http.Handler, method, path string, body any, authToken string) *httptest.ResponseRecorder {
	t.Helper()
	return PerformRequestWithHeaders(t, router, method, path, body, nil, authToken)
}

// PerformRequestWithHeaders is PerformRequest plus headers such as Idempotency-Key.
func PerformRequestWithHeaders(t *testing.T, router http.Handler, method, path string, body any, headers map[string]string, authToken string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, jsonBody(t, body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authToken != "" {
		req.Header.Set("Authorization", "Bearer "+authToken)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func jsonBody(t *testing.T, body any) io.Reader {
	t.Helper()
	if body == nil {
		return http.NoBody
	}
	b, err := json.Marshal(body)
	require.NoError(t, err, "failed to encode request body")
	return bytes.NewReader(b)
}
