package http

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/MKhiriev/avatar-dashboard/internal/service"
	"github.com/MKhiriev/avatar-dashboard/models"
	"github.com/stretchr/testify/assert"
)

func TestLogo(t *testing.T) {
	tests := []struct {
		name          string
		logo          models.Logo
		err           error
		wantStatus    int
		wantProcessed string
	}{
		{
			name:          "processed",
			logo:          models.Logo{Data: []byte("png"), ContentType: "image/png", Processed: true},
			wantStatus:    http.StatusOK,
			wantProcessed: "true",
		},
		{
			name:          "original",
			logo:          models.Logo{Data: []byte("jpg"), ContentType: "image/jpeg"},
			wantStatus:    http.StatusOK,
			wantProcessed: "false",
		},
		{name: "not configured", err: service.ErrLogoNotConfigured, wantStatus: http.StatusNotFound},
		{name: "unreadable", err: os.ErrNotExist, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(&service.Services{LogoService: &fakeLogoService{logo: tt.logo, err: tt.err}})

			rec := httptest.NewRecorder()
			h.logo(rec, httptest.NewRequest(http.MethodGet, "/api/logo", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.err == nil {
				assert.Equal(t, tt.logo.ContentType, rec.Header().Get("Content-Type"))
				assert.Equal(t, tt.wantProcessed, rec.Header().Get(processedHeader))
				assert.Equal(t, tt.logo.Data, rec.Body.Bytes())
			}
		})
	}
}
