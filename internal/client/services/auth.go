// Package services contains the application services of the SportowyHub
// client. This file defines the auth service: login, registration, email
// verification resend, token refresh, logout, and profile access, all
// reported to callers as AuthResult values rather than raw errors.
package services

import (
	"context"
	"errors"

	"github.com/sportowyhub/sportowyhub-cli/internal/client/api"
	"github.com/sportowyhub/sportowyhub-cli/internal/client/models"
	"github.com/sportowyhub/sportowyhub-cli/internal/client/secrets"
	"github.com/sportowyhub/sportowyhub-cli/internal/client/session"
	"github.com/sportowyhub/sportowyhub-cli/internal/logging"
)

const (
	loginPath              = "/api/v1/login"
	registerPath           = "/api/v1/register"
	resendVerificationPath = "/api/v1/resend-verification"
	refreshPath            = "/api/v1/refresh"
	logoutPath             = "/api/v1/logout"
	profilePath            = "/api/private/profile"
)

// includeRefreshTokenHeader asks the server to mint a refresh token along
// with the access token. Sent on login and refresh.
const includeRefreshTokenHeader = "X-Include-Refresh-Token"

// User-facing fallback messages. Raw transport errors are logged, never
// shown.
const (
	connectionErrorMessage  = "Connection error. Please check your internet connection and try again."
	unexpectedErrorMessage  = "An unexpected error occurred. Please try again."
	sessionExpiredMessage   = "Your session has expired. Please sign in again."
	storageErrorMessage     = "Secure storage is unavailable. Please restart the application."
	notAuthenticatedMessage = "You are not signed in."
	noRefreshTokenMessage   = "No refresh token available."
)

// Machine error codes produced locally. Server-side codes, like
// EMAIL_NOT_VERIFIED, pass through the error envelope untouched.
const (
	CodeNotAuthenticated = "NOT_AUTHENTICATED"
	CodeSessionExpired   = "SESSION_EXPIRED"
)

// AuthService defines the authentication operations of the client.
//
// Contract:
//   - Login/Register/ResendVerification/RefreshSession/Profile/UpdateProfile
//     never leak a raw error: every outcome is an AuthResult (success,
//     failure with message/field-errors/code, or cancellation).
//   - RefreshSession is fail-closed: any non-success outcome clears the
//     whole persisted session before returning.
//   - Logout clears the local session regardless of whether server-side
//     revocation succeeded.
//   - Token/CurrentUser/IsLoggedIn are pure session-store reads; IsLoggedIn
//     does not consult token expiry.
//
// All methods honor context cancellation/timeouts.
type AuthService interface {
	Login(ctx context.Context, email, password string) models.AuthResult[models.LoginResponse]
	Register(ctx context.Context, email, password, passwordConfirm, phone string) models.AuthResult[models.RegisterResponse]
	ResendVerification(ctx context.Context, email string) models.AuthResult[models.ResendVerificationResponse]
	RefreshSession(ctx context.Context) models.AuthResult[models.LoginResponse]
	Logout(ctx context.Context) error
	Token(ctx context.Context) (string, error)
	CurrentUser(ctx context.Context) (string, error)
	IsLoggedIn(ctx context.Context) (bool, error)
	Profile(ctx context.Context) models.AuthResult[models.UserProfile]
	UpdateProfile(ctx context.Context, req models.UpdateProfileAccountRequest) models.AuthResult[models.UserProfile]
	ClearAuth(ctx context.Context) error
}

// authService is the concrete AuthService backed by the HTTP request
// provider and the persisted session store. It keeps no mutable in-memory
// state; concurrent calls share only the session store, whose operations
// are single-key atomic. A RefreshSession racing a Logout may therefore
// re-create a session the logout just cleared. This is a known, accepted
// limitation rather than something this layer hides behind locking.
type authService struct {
	provider api.RequestProvider
	sessions *session.Store
	log      logging.Logger
}

// NewAuthService constructs an AuthService bound to the given provider and
// session store.
func NewAuthService(provider api.RequestProvider, sessions *session.Store, log logging.Logger) AuthService {
	return &authService{provider: provider, sessions: sessions, log: log.With("service", "auth")}
}

// toFailure maps an operation error onto the AuthResult taxonomy: caller
// cancellation, server-reported failure (envelope decoded), protocol
// mismatch, storage failure, and the connection-error catch-all.
func toFailure[T any](ctx context.Context, log logging.Logger, op string, err error) models.AuthResult[T] {
	if ctx.Err() != nil {
		log.Debug(ctx, op+" cancelled")
		return models.Cancelled[T]()
	}

	var authErr *api.AuthenticationError
	if errors.As(err, &authErr) {
		message, violations, code := api.ParseErrorEnvelope(authErr.Body, unexpectedErrorMessage)
		log.Warn(ctx, op+" rejected", "status", authErr.StatusCode, "code", code)
		return models.Failure[T](message, violations, code)
	}

	var reqErr *api.RequestError
	if errors.As(err, &reqErr) {
		message, violations, code := api.ParseErrorEnvelope(reqErr.Body, unexpectedErrorMessage)
		log.Warn(ctx, op+" failed", "status", reqErr.StatusCode, "code", code)
		return models.Failure[T](message, violations, code)
	}

	var protoErr *api.ProtocolError
	if errors.As(err, &protoErr) {
		log.Error(ctx, op+": malformed server response", "error", protoErr.Err)
		return models.Failure[T](unexpectedErrorMessage, nil, "")
	}

	if errors.Is(err, secrets.ErrUnavailable) {
		log.Error(ctx, op+": secret store failure", "error", err)
		return models.Failure[T](storageErrorMessage, nil, "")
	}

	log.Error(ctx, op+": request failed", "error", err)
	return models.Failure[T](connectionErrorMessage, nil, "")
}

// Login authenticates the user and persists the returned session. The
// EMAIL_NOT_VERIFIED error code passes through for callers to route on.
func (a *authService) Login(ctx context.Context, email, password string) models.AuthResult[models.LoginResponse] {
	var resp models.LoginResponse
	err := a.provider.Post(ctx, loginPath,
		models.LoginRequest{Email: email, Password: password}, &resp, "",
		map[string]string{includeRefreshTokenHeader: "true"})
	if err != nil {
		return toFailure[models.LoginResponse](ctx, a.log, "login", err)
	}

	if err := a.sessions.Save(ctx, resp.AccessToken, resp.RefreshToken, email, resp.ExpiresIn); err != nil {
		a.log.Error(ctx, "login: saving session failed", "error", err)
		return models.Failure[models.LoginResponse](storageErrorMessage, nil, "")
	}

	a.log.Info(ctx, "login ok", "email", email)
	return models.Success(resp)
}

// Register creates a new account. It does not authenticate: the user must
// verify their email and log in explicitly. Server-side validation errors
// surface as per-field messages (notably "email" and "phone").
func (a *authService) Register(ctx context.Context, email, password, passwordConfirm, phone string) models.AuthResult[models.RegisterResponse] {
	var resp models.RegisterResponse
	err := a.provider.Post(ctx, registerPath, models.RegisterRequest{
		Email:           email,
		Password:        password,
		PasswordConfirm: passwordConfirm,
		Phone:           phone,
	}, &resp, "", nil)
	if err != nil {
		return toFailure[models.RegisterResponse](ctx, a.log, "register", err)
	}
	return models.Success(resp)
}

// ResendVerification asks the server to send the verification email again.
// Cooldown handling is the caller's concern; this method just reports the
// outcome.
func (a *authService) ResendVerification(ctx context.Context, email string) models.AuthResult[models.ResendVerificationResponse] {
	var resp models.ResendVerificationResponse
	err := a.provider.Post(ctx, resendVerificationPath,
		models.ResendVerificationRequest{Email: email}, &resp, "", nil)
	if err != nil {
		return toFailure[models.ResendVerificationResponse](ctx, a.log, "resend verification", err)
	}
	return models.Success(resp)
}

// RefreshSession exchanges the stored refresh token for a fresh session.
//
// Fail-closed: whenever the call does not end in success (the server
// rejected the token, the network was down, the response was malformed, or
// the caller cancelled), the entire persisted session is cleared before
// returning. Stale or half-refreshed credentials never survive this method.
// Without a stored refresh token it fails locally, with no network call;
// that path still clears, so a degraded access-token-only session does not
// outlive a failed refresh.
func (a *authService) RefreshSession(ctx context.Context) models.AuthResult[models.LoginResponse] {
	refreshToken, err := a.sessions.RefreshToken(ctx)
	if err != nil {
		a.failClosed(ctx, "refresh")
		return toFailure[models.LoginResponse](ctx, a.log, "refresh", err)
	}
	if refreshToken == "" {
		a.failClosed(ctx, "refresh")
		return models.Failure[models.LoginResponse](noRefreshTokenMessage, nil, "")
	}

	user, err := a.sessions.User(ctx)
	if err != nil {
		user = ""
	}

	var resp models.LoginResponse
	err = a.provider.Post(ctx, refreshPath, struct{}{}, &resp, refreshToken,
		map[string]string{includeRefreshTokenHeader: "true"})
	if err != nil {
		a.failClosed(ctx, "refresh")

		if ctx.Err() != nil {
			return models.Cancelled[models.LoginResponse]()
		}
		if errors.Is(err, secrets.ErrUnavailable) {
			return models.Failure[models.LoginResponse](storageErrorMessage, nil, "")
		}
		var authErr *api.AuthenticationError
		if errors.As(err, &authErr) {
			message, _, code := api.ParseErrorEnvelope(authErr.Body, sessionExpiredMessage)
			if code == "" {
				code = CodeSessionExpired
			}
			return models.Failure[models.LoginResponse](message, nil, code)
		}
		a.log.Error(ctx, "refresh failed", "error", err)
		return models.Failure[models.LoginResponse](sessionExpiredMessage, nil, CodeSessionExpired)
	}

	if err := a.sessions.Save(ctx, resp.AccessToken, resp.RefreshToken, user, resp.ExpiresIn); err != nil {
		a.failClosed(ctx, "refresh")
		a.log.Error(ctx, "refresh: saving session failed", "error", err)
		return models.Failure[models.LoginResponse](storageErrorMessage, nil, "")
	}

	a.log.Info(ctx, "session refreshed")
	return models.Success(resp)
}

// failClosed wipes the session on the refresh failure path. It runs outside
// the caller's cancellation so a cancelled refresh still degrades cleanly
// to logged-out.
func (a *authService) failClosed(ctx context.Context, op string) {
	if err := a.sessions.Clear(context.WithoutCancel(ctx)); err != nil {
		a.log.Error(ctx, op+": clearing session failed", "error", err)
	}
}

// Logout revokes the refresh token server-side on a best-effort basis, then
// clears the local session unconditionally. A network failure during
// revocation never prevents the local logout.
func (a *authService) Logout(ctx context.Context) error {
	refreshToken, err := a.sessions.RefreshToken(ctx)
	if err != nil {
		a.log.Warn(ctx, "logout: reading refresh token failed", "error", err)
	} else if refreshToken != "" {
		if remoteErr := a.provider.Post(ctx, logoutPath, struct{}{}, nil, refreshToken, nil); remoteErr != nil {
			a.log.Warn(ctx, "logout: server revocation failed, clearing locally anyway", "error", remoteErr)
		}
	}

	return a.ClearAuth(context.WithoutCancel(ctx))
}

// Token returns the stored access token, or "" when logged out.
func (a *authService) Token(ctx context.Context) (string, error) {
	return a.sessions.AccessToken(ctx)
}

// CurrentUser returns the identity stored at login, or "" when logged out.
func (a *authService) CurrentUser(ctx context.Context) (string, error) {
	return a.sessions.User(ctx)
}

// IsLoggedIn reports whether an access token is stored. It deliberately
// does not check the stored expiry; expiry-driven refresh belongs to the
// caller.
func (a *authService) IsLoggedIn(ctx context.Context) (bool, error) {
	token, err := a.sessions.AccessToken(ctx)
	if err != nil {
		return false, err
	}
	return token != "", nil
}

// Profile fetches the signed-in user's profile. Without a stored access
// token it fails locally with CodeNotAuthenticated and makes no network
// call.
func (a *authService) Profile(ctx context.Context) models.AuthResult[models.UserProfile] {
	token, err := a.sessions.AccessToken(ctx)
	if err != nil {
		return toFailure[models.UserProfile](ctx, a.log, "profile", err)
	}
	if token == "" {
		return models.Failure[models.UserProfile](notAuthenticatedMessage, nil, CodeNotAuthenticated)
	}

	var profile models.UserProfile
	if err := a.provider.Get(ctx, profilePath, token, &profile); err != nil {
		return toFailure[models.UserProfile](ctx, a.log, "profile", err)
	}
	return models.Success(profile)
}

// UpdateProfile submits the editable account fields and returns the updated
// profile. Same auth precondition as Profile.
func (a *authService) UpdateProfile(ctx context.Context, req models.UpdateProfileAccountRequest) models.AuthResult[models.UserProfile] {
	token, err := a.sessions.AccessToken(ctx)
	if err != nil {
		return toFailure[models.UserProfile](ctx, a.log, "update profile", err)
	}
	if token == "" {
		return models.Failure[models.UserProfile](notAuthenticatedMessage, nil, CodeNotAuthenticated)
	}

	var profile models.UserProfile
	if err := a.provider.Put(ctx, profilePath, req, &profile, token); err != nil {
		return toFailure[models.UserProfile](ctx, a.log, "update profile", err)
	}
	return models.Success(profile)
}

// ClearAuth removes every persisted session entry. It is the single
// clearing primitive shared by Logout and the refresh fail-closed path,
// and it is idempotent.
func (a *authService) ClearAuth(ctx context.Context) error {
	return a.sessions.Clear(ctx)
}
