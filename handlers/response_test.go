package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"time-tracker/backend/services"
)

func TestWriteErrorStatusMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{services.NotFound("project not found"), http.StatusNotFound},
		{services.Conflict("task is already assigned to this user"), http.StatusConflict},
		{services.Invalid("title is required"), http.StatusBadRequest},
		{services.Unauthorized("invalid credentials"), http.StatusUnauthorized},
		{assert.AnError, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		rr := httptest.NewRecorder()
		writeError(rr, tc.err)

		assert.Equal(t, tc.status, rr.Code)

		var body apiResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
		assert.Equal(t, tc.err.Error(), body.Message)
	}
}

func TestWriteJSONEnvelope(t *testing.T) {
	rr := httptest.NewRecorder()
	writeJSON(rr, http.StatusCreated, "Project created successfully", map[string]string{"title": "CRM"})

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var body apiResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, "Project created successfully", body.Message)
}

func TestPathID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/projects/507f1f77bcf86cd799439011", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "507f1f77bcf86cd799439011"})

	id, err := pathID(req, "id")
	require.NoError(t, err)
	assert.Equal(t, "507f1f77bcf86cd799439011", id.Hex())
}

func TestPathIDInvalid(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/projects/nope", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "nope"})

	_, err := pathID(req, "id")
	require.Error(t, err)
	assert.True(t, services.IsValidation(err))
}

func TestDecodeBodyInvalidPayload(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/projects/add", strings.NewReader("{broken"))

	var dst map[string]any
	err := decodeBody(req, &dst)
	require.Error(t, err)
	assert.True(t, services.IsValidation(err))
}
