package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CareMatch-App/internal/domain/model"
)

func TestProfileGet_自組織の施設を返す(t *testing.T) {
	fixture := setupTestRouter()

	w := doRequest(t, fixture, http.MethodGet, "/api/profile", "orgadmin", "")

	require.Equal(t, http.StatusOK, w.Code)
	var facility model.Facility
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &facility))
	assert.Equal(t, "f1", facility.ID)
	assert.Equal(t, "Sunrise Care", facility.Name)
}

func TestProfileGet_セッションなしは401(t *testing.T) {
	fixture := setupTestRouter()

	w := doRequest(t, fixture, http.MethodGet, "/api/profile", "", "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, w.Body.String())
}

func TestProfileUpdate_部分更新(t *testing.T) {
	fixture := setupTestRouter()

	w := doRequest(t, fixture, http.MethodPut, "/api/profile", "orgadmin", `{"bio":"updated bio"}`)

	require.Equal(t, http.StatusOK, w.Code)
	var facility model.Facility
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &facility))
	assert.Equal(t, "updated bio", facility.Bio)
	assert.Equal(t, "updated bio", fixture.facilities.facilities["f1"].Bio)
}

func TestProfileUpdate_画像4枚は400でストア不変(t *testing.T) {
	fixture := setupTestRouter()

	body := `{"images":["a.png","b.png","c.png","d.png"]}`
	w := doRequest(t, fixture, http.MethodPut, "/api/profile", "orgadmin", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, fixture.facilities.facilities["f1"].Images)
}

func TestProfileUpdate_301文字の紹介文は400でストア不変(t *testing.T) {
	fixture := setupTestRouter()

	longBio := strings.Repeat("a", model.MaxBioLength+1)
	w := doRequest(t, fixture, http.MethodPut, "/api/profile", "orgadmin", `{"bio":"`+longBio+`"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "original", fixture.facilities.facilities["f1"].Bio)
}

func TestProfileUpdate_不正なJSONは400(t *testing.T) {
	fixture := setupTestRouter()

	w := doRequest(t, fixture, http.MethodPut, "/api/profile", "orgadmin", `{"bio":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_request")
}
