//go:build unit || e2e

package httptest

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ErrorBody mirrors the API error envelope.
type ErrorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	RequestID string         `json:"requestId"`
	Detail    map[string]any `json:"detail"`
}

// AssertSuccessResponse checks the status and decodes a 2xx body into target.
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, target any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code, "response: %s", w.Body.String()) {
		return
	}
	if target != nil && expectedStatus >= 200 && expectedStatus < 300 {
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), target), "response: %s", w.Body.String())
	}
}

// AssertErrorResponse checks the status and that the message contains expectedMsg.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedMsg string) ErrorBody {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code, "response: %s", w.Body.String())
	body := DecodeError(t, w)
	if expectedMsg != "" {
		assert.Contains(t, body.Error.Message, expectedMsg)
	}
	return body
}

// AssertErrorCode checks the status and the machine-readable error code.
func AssertErrorCode(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedCode string) ErrorBody {
	t.Helper()

	body := AssertErrorResponse(t, w, expectedStatus, "")
	assert.Equal(t, expectedCode, body.Error.Code)
	return body
}

func DecodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorBody {
	t.Helper()
	var body ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "response: %s", w.Body.String())
	return body
}

func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		assert.Equal(t, v, w.Header().Get(k), "header %s", k)
	}
}

func DecodeResponseBody(t *testing.T, body *bytes.Buffer, target any) error {
	t.Helper()
	err := json.Unmarshal(body.Bytes(), target)
	require.NoError(t, err, "response: %s", body.String())
	return err
}
