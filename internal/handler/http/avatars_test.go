package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/avatar-dashboard/internal/service"
	"github.com/MKhiriev/avatar-dashboard/internal/store"
	"github.com/MKhiriev/avatar-dashboard/internal/utils"
	"github.com/MKhiriev/avatar-dashboard/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authedRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	return req.WithContext(utils.WithUser(req.Context(), "u1", "bt"))
}

func TestCreateAvatar(t *testing.T) {
	h := newTestHandler(&service.Services{AvatarService: &fakeAvatarService{
		createAvatarFn: func(_ context.Context, userID string, req models.CreateAvatarRequest) (models.Avatar, error) {
			assert.Equal(t, "u1", userID)
			return models.Avatar{ID: "av-1", UserID: models.Some(userID), Name: req.Name, Slug: "bob"}, nil
		},
	}})

	rec := httptest.NewRecorder()
	h.createAvatar(rec, authedRequest(http.MethodPost, "/api/avatars", `{"name":"Bob"}`))

	require.Equal(t, http.StatusCreated, rec.Code)
	result := decodeResult(t, rec)
	assert.True(t, result.Success)
	assert.Contains(t, rec.Body.String(), `"slug":"bob"`)
}

func TestCreateAvatar_Validation(t *testing.T) {
	h := newTestHandler(&service.Services{AvatarService: &fakeAvatarService{}})

	for _, body := range []string{`{}`, `{"name":""}`, `[`, `{"name":"` + strings.Repeat("a", 129) + `"}`} {
		rec := httptest.NewRecorder()
		h.createAvatar(rec, authedRequest(http.MethodPost, "/api/avatars", body))
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}
}

func TestCreateAvatar_Conflict(t *testing.T) {
	h := newTestHandler(&service.Services{AvatarService: &fakeAvatarService{
		createAvatarFn: func(context.Context, string, models.CreateAvatarRequest) (models.Avatar, error) {
			return models.Avatar{}, store.ErrAvatarAlreadyExists
		},
	}})

	rec := httptest.NewRecorder()
	h.createAvatar(rec, authedRequest(http.MethodPost, "/api/avatars", `{"name":"Bob"}`))

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestSanitizeName(t *testing.T) {
	h := newTestHandler(&service.Services{AvatarService: &fakeAvatarService{}})

	rec := httptest.NewRecorder()
	h.sanitizeName(rec, httptest.NewRequest(http.MethodPost, "/api/names/sanitize", strings.NewReader(`{"name":"My Avatar"}`)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"name":"my_avatar"}`, rec.Body.String())
}

func TestSanitizeName_InvalidJSON(t *testing.T) {
	h := newTestHandler(&service.Services{AvatarService: &fakeAvatarService{}})

	rec := httptest.NewRecorder()
	h.sanitizeName(rec, httptest.NewRequest(http.MethodPost, "/api/names/sanitize", strings.NewReader(`nope`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
