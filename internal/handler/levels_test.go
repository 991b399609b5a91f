package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleGetLevels(t *testing.T) {
	req := httptest.NewRequest("GET", "/levels", nil)
	rec := httptest.NewRecorder()

	HandleGetLevels()(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp LevelsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 50, resp.MinLevel)
	assert.Equal(t, 100, resp.MaxLevel)
	assert.Len(t, resp.Levels, 50)
	assert.Equal(t, 24196, resp.Levels[0].ExperienceNeeded)
	assert.Equal(t, 100, resp.Levels[len(resp.Levels)-1].ToLevel)
}
