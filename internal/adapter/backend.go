package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/avatar-dashboard/internal/config"
	"github.com/MKhiriev/avatar-dashboard/internal/logger"
	"github.com/MKhiriev/avatar-dashboard/internal/utils"
	"github.com/MKhiriev/avatar-dashboard/models"
	"github.com/go-resty/resty/v2"
)

const (
	authTokenPath  = "/auth/v1/token"
	authSignUpPath = "/auth/v1/signup"
	authLogoutPath = "/auth/v1/logout"
	restPathPrefix = "/rest/v1/"

	apiKeyHeader = "apikey"
)

// Filter is a single row filter in the backend's "column=operator.value"
// query syntax.
type Filter struct {
	Column   string
	Operator string
	Value    string
}

// Eq matches rows whose column equals value.
func Eq(column, value string) Filter {
	return Filter{Column: column, Operator: "eq", Value: value}
}

// IsNull matches rows whose column is null.
func IsNull(column string) Filter {
	return Filter{Column: column, Operator: "is", Value: "null"}
}

// OptionalEq matches column against v, where a null or unset v matches null
// columns.
func OptionalEq(column string, v models.Optional[string]) Filter {
	if value, ok := v.Get(); ok {
		return Eq(column, value)
	}
	return IsNull(column)
}

func (f Filter) String() string {
	return f.Operator + "." + f.Value
}

type backendAdapter struct {
	client *utils.HTTPClient
	apiKey string

	logger *logger.Logger
}

// NewBackendAdapter constructs the REST implementation of [Backend] for the
// project at adapterCfg.BackendURL.
//
// Returns an error if the URL is empty or cannot be parsed.
func NewBackendAdapter(adapterCfg config.Adapter, logger *logger.Logger) (Backend, error) {
	client, err := utils.NewBaseURLClient(adapterCfg.BackendURL, adapterCfg.RequestTimeout)
	if err != nil {
		return nil, fmt.Errorf("invalid backend url: %w", err)
	}

	client.SetHeader(apiKeyHeader, adapterCfg.BackendAPIKey)

	return &backendAdapter{client: client, apiKey: adapterCfg.BackendAPIKey, logger: logger}, nil
}

type credentialsBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (b *backendAdapter) SignIn(ctx context.Context, email, password string) (models.Session, error) {
	var session models.Session

	resp, err := b.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetQueryParam("grant_type", "password").
		SetBody(credentialsBody{Email: email, Password: password}).
		SetResult(&session).
		Post(authTokenPath)
	if err != nil {
		return models.Session{}, fmt.Errorf("sign in request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Session{}, err
	}
	if session.AccessToken == "" {
		return models.Session{}, fmt.Errorf("sign in: %w", ErrEmptyResponse)
	}

	return session, nil
}

func (b *backendAdapter) SignUp(ctx context.Context, email, password string) (models.Session, error) {
	resp, err := b.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentialsBody{Email: email, Password: password}).
		Post(authSignUpPath)
	if err != nil {
		return models.Session{}, fmt.Errorf("sign up request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Session{}, err
	}

	var session models.Session
	if err = json.Unmarshal(resp.Body(), &session); err != nil {
		return models.Session{}, fmt.Errorf("decode sign up response: %w", err)
	}

	// without auto-confirm the user object is returned at the top level
	if session.User.ID == "" {
		if err = json.Unmarshal(resp.Body(), &session.User); err != nil {
			return models.Session{}, fmt.Errorf("decode sign up user: %w", err)
		}
	}
	if session.AccessToken == "" {
		b.logger.Debug().Str("user_id", session.User.ID).Msg("sign up returned no session, email confirmation pending")
	}

	return session, nil
}

func (b *backendAdapter) SignOut(ctx context.Context, accessToken string) error {
	accessToken = strings.TrimSpace(accessToken)
	if accessToken == "" {
		return fmt.Errorf("sign out: %w", ErrUnauthorized)
	}

	resp, err := b.client.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		Post(authLogoutPath)
	if err != nil {
		return fmt.Errorf("sign out request: %w", err)
	}

	return mapHTTPError(resp)
}

func (b *backendAdapter) Query(ctx context.Context, table string, dest any, filters ...Filter) error {
	params := url.Values{}
	params.Set("select", "*")
	for _, f := range filters {
		params.Add(f.Column, f.String())
	}

	resp, err := b.authedRequest(ctx).
		SetQueryParamsFromValues(params).
		SetResult(dest).
		Get(restPathPrefix + table)
	if err != nil {
		return fmt.Errorf("query %s request: %w", table, err)
	}

	return mapHTTPError(resp)
}

func (b *backendAdapter) Insert(ctx context.Context, table string, row any, dest any) error {
	req := b.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(row)
	if dest != nil {
		req.SetHeader("Prefer", "return=representation").SetResult(dest)
	}

	resp, err := req.Post(restPathPrefix + table)
	if err != nil {
		return fmt.Errorf("insert into %s request: %w", table, err)
	}

	return mapHTTPError(resp)
}

// authedRequest authorizes the request with the caller's backend token,
// falling back to the project API key.
func (b *backendAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := b.client.R().SetContext(ctx)
	if token, ok := utils.GetBackendTokenFromContext(ctx); ok {
		return req.SetAuthToken(token)
	}
	return req.SetAuthToken(b.apiKey)
}
