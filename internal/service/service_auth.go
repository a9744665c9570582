package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/avatar-dashboard/internal/adapter"
	"github.com/MKhiriev/avatar-dashboard/internal/config"
	"github.com/MKhiriev/avatar-dashboard/internal/logger"
	"github.com/MKhiriev/avatar-dashboard/internal/utils"
	"github.com/MKhiriev/avatar-dashboard/models"
)

// authService is the concrete implementation of AuthService.
// Passwords never reach this service's storage: the backend owns the
// accounts, and the dashboard JWT only wraps the backend session.
type authService struct {
	// backend authenticates accounts and revokes sessions.
	backend adapter.Backend

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs an AuthService that authenticates against backend
// and signs tokens with the parameters from cfg.
func NewAuthService(backend adapter.Backend, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		backend:       backend,
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// Login signs the user in at the backend and wraps the session into a
// dashboard token.
//
// Returns ErrInvalidDataProvided if email or password is empty and
// ErrInvalidCredentials when the backend answers 400 to the pair. Other
// backend errors are wrapped as is.
func (a *authService) Login(ctx context.Context, req models.AuthRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	if !validAuthRequest(req) {
		log.Error().Str("email", req.Email).Msg("invalid user data provided")
		return models.Token{}, ErrInvalidDataProvided
	}

	session, err := a.backend.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("sign in failed")
		if errors.Is(err, adapter.ErrBadRequest) {
			return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
		}
		return models.Token{}, fmt.Errorf("sign in failed: %w", err)
	}

	return a.CreateToken(ctx, session)
}

// Register creates the account at the backend. When the backend holds the
// session back until the email is confirmed, ErrConfirmationPending is
// returned and no token is issued.
func (a *authService) Register(ctx context.Context, req models.AuthRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	if !validAuthRequest(req) {
		log.Error().Str("email", req.Email).Msg("invalid user data provided")
		return models.Token{}, ErrInvalidDataProvided
	}

	session, err := a.backend.SignUp(ctx, req.Email, req.Password)
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("sign up failed")
		return models.Token{}, fmt.Errorf("sign up failed: %w", err)
	}

	if session.AccessToken == "" {
		log.Info().Str("email", req.Email).Msg("sign up awaits email confirmation")
		return models.Token{}, ErrConfirmationPending
	}

	return a.CreateToken(ctx, session)
}

func (a *authService) Logout(ctx context.Context) error {
	log := logger.FromContext(ctx)

	backendToken, ok := utils.GetBackendTokenFromContext(ctx)
	if !ok {
		return ErrNotAuthenticated
	}

	if err := a.backend.SignOut(ctx, backendToken); err != nil {
		log.Err(err).Msg("sign out failed")
		return fmt.Errorf("sign out failed: %w", err)
	}

	return nil
}

// CreateToken issues a signed JWT whose subject is the backend user id and
// which carries the backend access token.
func (a *authService) CreateToken(ctx context.Context, session models.Session) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.GenerateJWTToken(a.tokenIssuer, session.User.ID, session.AccessToken, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Str("user_id", session.User.ID).Msg("error generating token")
		return models.Token{}, fmt.Errorf("error generating token: %w", err)
	}

	return token, nil
}

// ParseToken validates the signature, expiry and issuer of tokenString.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, err
	}

	return token, nil
}

func validAuthRequest(req models.AuthRequest) bool {
	return strings.TrimSpace(req.Email) != "" && req.Password != ""
}
