//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// envelope mirrors the API response shape {success, data?, error?}.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// AssertSuccessEnvelope checks the status code and {success:true} envelope,
// then decodes data into targetStruct when non-nil.
func AssertSuccessEnvelope(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, targetStruct any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String())) {
		return
	}

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), "Failed to decode response envelope")
	require.True(t, env.Success, "Expected success envelope, got: %s", w.Body.String())

	if targetStruct != nil {
		require.NoError(t, json.Unmarshal(env.Data, targetStruct), "Failed to decode envelope data")
	}
}

// AssertErrorEnvelope checks the status code and the {success:false, error}
// envelope, optionally asserting the error message.
func AssertErrorEnvelope(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedMessage string) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String())) {
		return
	}

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), "Failed to decode response envelope")
	assert.False(t, env.Success, "Expected failure envelope, got: %s", w.Body.String())

	if expectedMessage != "" {
		assert.Equal(t, expectedMessage, env.Error)
	}
}

// AssertValidationError checks the {code:"VALIDATION_ERROR", issues} shape.
func AssertValidationError(t *testing.T, w *httptest.ResponseRecorder) {
	t.Helper()

	require.Equal(t, 400, w.Code, "Expected status 400, got %d. Response: %s", w.Code, w.Body.String())

	var resp struct {
		Code   string `json:"code"`
		Issues []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"issues"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "Failed to decode validation response")
	assert.Equal(t, "VALIDATION_ERROR", resp.Code)
	assert.NotEmpty(t, resp.Issues)
}
