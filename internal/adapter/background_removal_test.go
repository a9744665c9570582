package adapter

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/avatar-dashboard/internal/config"
	"github.com/MKhiriev/avatar-dashboard/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n0000")

func TestBackgroundRemover_Remove(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/remove", r.URL.Path)
		assert.Equal(t, "image/png", r.Header.Get("Content-Type"))

		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Equal(t, pngHeader, raw)

		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte("processed"))
	}))
	defer srv.Close()

	remover, err := NewBackgroundRemover(config.Adapter{BackgroundRemovalURL: srv.URL + "/remove"}, logger.Nop())
	require.NoError(t, err)

	out, err := remover.Remove(context.Background(), pngHeader, "")
	require.NoError(t, err)
	assert.Equal(t, []byte("processed"), out)
}

func TestBackgroundRemover_Errors(t *testing.T) {
	t.Run("server error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		remover, err := NewBackgroundRemover(config.Adapter{BackgroundRemovalURL: srv.URL}, logger.Nop())
		require.NoError(t, err)

		_, err = remover.Remove(context.Background(), pngHeader, "image/png")
		assert.ErrorIs(t, err, ErrBadGateway)
	})

	t.Run("empty body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		remover, err := NewBackgroundRemover(config.Adapter{BackgroundRemovalURL: srv.URL}, logger.Nop())
		require.NoError(t, err)

		_, err = remover.Remove(context.Background(), pngHeader, "image/png")
		assert.ErrorIs(t, err, ErrEmptyResponse)
	})

	t.Run("not configured", func(t *testing.T) {
		remover, err := NewBackgroundRemover(config.Adapter{}, logger.Nop())
		require.NoError(t, err)

		_, err = remover.Remove(context.Background(), pngHeader, "image/png")
		assert.ErrorIs(t, err, ErrNotConfigured)
	})
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "plain text", errorMessage([]byte(" plain text ")))
	assert.Equal(t, "desc", errorMessage([]byte(`{"error":"e","error_description":"desc"}`)))
	assert.Equal(t, "msg", errorMessage([]byte(`{"msg":"msg","message":"message"}`)))
	assert.Equal(t, "message", errorMessage([]byte(`{"message":"message"}`)))
	assert.Equal(t, `{"code":1}`, errorMessage([]byte(`{"code":1}`)))
}
