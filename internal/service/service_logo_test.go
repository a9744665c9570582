package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/avatar-dashboard/internal/adapter"
	"github.com/MKhiriev/avatar-dashboard/internal/config"
	"github.com/MKhiriev/avatar-dashboard/internal/logger"
	"github.com/MKhiriev/avatar-dashboard/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// pngHeader is enough for http.DetectContentType to report image/png.
var pngHeader = []byte("\x89PNG\r\n\x1a\n0000")

func writeTestLogo(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "logo.png")
	require.NoError(t, os.WriteFile(path, pngHeader, 0o600))
	return path
}

func newTestLogoService(t *testing.T, path string) (LogoService, *mock.MockBackgroundRemover) {
	t.Helper()
	remover := mock.NewMockBackgroundRemover(gomock.NewController(t))
	return NewLogoService(remover, config.App{LogoPath: path}, logger.Nop()), remover
}

func TestLogoService_NotConfigured(t *testing.T) {
	svc, _ := newTestLogoService(t, "")

	_, err := svc.Logo(context.Background())
	assert.ErrorIs(t, err, ErrLogoNotConfigured)
	assert.ErrorIs(t, svc.Refresh(context.Background()), ErrLogoNotConfigured)
}

func TestLogoService_ServesProcessed(t *testing.T) {
	svc, remover := newTestLogoService(t, writeTestLogo(t))
	ctx := context.Background()

	remover.EXPECT().Remove(ctx, pngHeader, "image/png").Return([]byte("processed"), nil).Times(1)

	logo, err := svc.Logo(ctx)
	require.NoError(t, err)
	assert.True(t, logo.Processed)
	assert.Equal(t, []byte("processed"), logo.Data)
	assert.Equal(t, "image/png", logo.ContentType)

	// cached: the remover is not called again
	logo, err = svc.Logo(ctx)
	require.NoError(t, err)
	assert.True(t, logo.Processed)
}

func TestLogoService_FallsBackToOriginal(t *testing.T) {
	svc, remover := newTestLogoService(t, writeTestLogo(t))
	ctx := context.Background()

	remover.EXPECT().Remove(ctx, gomock.Any(), gomock.Any()).Return(nil, adapter.ErrNotConfigured).Times(1)

	for range 2 {
		logo, err := svc.Logo(ctx)
		require.NoError(t, err)
		assert.False(t, logo.Processed)
		assert.Equal(t, pngHeader, logo.Data)
		assert.Equal(t, "image/png", logo.ContentType)
	}
}

func TestLogoService_MissingFile(t *testing.T) {
	svc, _ := newTestLogoService(t, filepath.Join(t.TempDir(), "missing.png"))

	_, err := svc.Logo(context.Background())
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrLogoNotConfigured)
}

func TestLogoService_Refresh_KeepsPreviousOnFailure(t *testing.T) {
	svc, remover := newTestLogoService(t, writeTestLogo(t))
	ctx := context.Background()

	gomock.InOrder(
		remover.EXPECT().Remove(ctx, gomock.Any(), gomock.Any()).Return([]byte("v1"), nil),
		remover.EXPECT().Remove(ctx, gomock.Any(), gomock.Any()).Return(nil, adapter.ErrBadGateway),
	)

	require.NoError(t, svc.Refresh(ctx))
	assert.ErrorIs(t, svc.Refresh(ctx), adapter.ErrBadGateway)

	logo, err := svc.Logo(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), logo.Data)
}
