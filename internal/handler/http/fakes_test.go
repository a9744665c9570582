package http

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/avatar-dashboard/internal/logger"
	"github.com/MKhiriev/avatar-dashboard/internal/service"
	"github.com/MKhiriev/avatar-dashboard/models"
	"github.com/stretchr/testify/require"
)

// Each fake implements one service interface; method fields are overridden
// per test case.

type fakeAuthService struct {
	loginFn       func(ctx context.Context, req models.AuthRequest) (models.Token, error)
	registerFn    func(ctx context.Context, req models.AuthRequest) (models.Token, error)
	logoutFn      func(ctx context.Context) error
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
	createTokenFn func(ctx context.Context, session models.Session) (models.Token, error)
}

func (f *fakeAuthService) Login(ctx context.Context, req models.AuthRequest) (models.Token, error) {
	return f.loginFn(ctx, req)
}

func (f *fakeAuthService) Register(ctx context.Context, req models.AuthRequest) (models.Token, error) {
	return f.registerFn(ctx, req)
}

func (f *fakeAuthService) Logout(ctx context.Context) error {
	return f.logoutFn(ctx)
}

func (f *fakeAuthService) CreateToken(ctx context.Context, session models.Session) (models.Token, error) {
	return f.createTokenFn(ctx, session)
}

func (f *fakeAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return f.parseTokenFn(ctx, tokenString)
}

type fakeDemoUserService struct {
	result models.DemoUserResult
}

func (f *fakeDemoUserService) EnsureDemoUser(context.Context) models.DemoUserResult {
	return f.result
}

type fakeDashboardService struct {
	clientViewsFn func(ctx context.Context) ([]models.ClientView, error)
	summaryFn     func(ctx context.Context) (models.DashboardSummary, error)
	myClientFn    func(ctx context.Context, userID string) (models.ClientView, error)
}

func (f *fakeDashboardService) ClientViews(ctx context.Context) ([]models.ClientView, error) {
	return f.clientViewsFn(ctx)
}

func (f *fakeDashboardService) Summary(ctx context.Context) (models.DashboardSummary, error) {
	return f.summaryFn(ctx)
}

func (f *fakeDashboardService) MyClient(ctx context.Context, userID string) (models.ClientView, error) {
	return f.myClientFn(ctx, userID)
}

type fakeCredentialsService struct {
	manageFn func(ctx context.Context, input models.CredentialsInput) (models.CredentialsResult, error)
}

func (f *fakeCredentialsService) Manage(ctx context.Context, input models.CredentialsInput) (models.CredentialsResult, error) {
	return f.manageFn(ctx, input)
}

type fakeAvatarService struct {
	createAvatarFn func(ctx context.Context, userID string, req models.CreateAvatarRequest) (models.Avatar, error)
}

func (f *fakeAvatarService) CreateAvatar(ctx context.Context, userID string, req models.CreateAvatarRequest) (models.Avatar, error) {
	return f.createAvatarFn(ctx, userID, req)
}

func (f *fakeAvatarService) SanitizeName(_ context.Context, name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", "_"))
}

type fakeLogoService struct {
	logo models.Logo
	err  error
}

func (f *fakeLogoService) Logo(context.Context) (models.Logo, error) {
	return f.logo, f.err
}

func (f *fakeLogoService) Refresh(context.Context) error {
	return f.err
}

type fakeAppInfoService struct {
	version string
}

func (f *fakeAppInfoService) GetAppVersion(context.Context) string {
	return f.version
}

func (f *fakeAppInfoService) GetBuildInfo(context.Context) models.AppBuildInfo {
	return models.NewAppBuildInfo("v1.0.0", "", "abc")
}

// newTestHandler builds a Handler over services. Missing services stay nil.
func newTestHandler(services *service.Services) *Handler {
	if services == nil {
		services = &service.Services{}
	}
	return NewHandler(services, logger.Nop())
}

func jsonBody(t *testing.T, v any) *strings.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return strings.NewReader(string(b))
}

func decodeResult(t *testing.T, rec *httptest.ResponseRecorder) models.APIResult {
	t.Helper()
	var result models.APIResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	return result
}
