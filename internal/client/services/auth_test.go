package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sportowyhub/sportowyhub-cli/internal/client/api"
	"github.com/sportowyhub/sportowyhub-cli/internal/client/models"
	"github.com/sportowyhub/sportowyhub-cli/internal/client/secrets"
	"github.com/sportowyhub/sportowyhub-cli/internal/client/session"
	"github.com/sportowyhub/sportowyhub-cli/internal/logging"
)

// fakeProvider records the last request of each method and replies with the
// configured response or error.
type fakeProvider struct {
	GetCalls    int
	PostCalls   int
	PutCalls    int
	DeleteCalls int

	LastPath    string
	LastToken   string
	LastBody    any
	LastHeaders map[string]string

	Resp any
	Err  error
}

func (f *fakeProvider) reply(out any) error {
	if f.Err != nil {
		return f.Err
	}
	if out == nil || f.Resp == nil {
		return nil
	}
	data, err := json.Marshal(f.Resp)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

func (f *fakeProvider) Get(ctx context.Context, path, token string, out any) error {
	f.GetCalls++
	f.LastPath, f.LastToken, f.LastBody, f.LastHeaders = path, token, nil, nil
	return f.reply(out)
}

func (f *fakeProvider) Post(ctx context.Context, path string, body, out any, token string, headers map[string]string) error {
	f.PostCalls++
	f.LastPath, f.LastToken, f.LastBody, f.LastHeaders = path, token, body, headers
	return f.reply(out)
}

func (f *fakeProvider) Put(ctx context.Context, path string, body, out any, token string) error {
	f.PutCalls++
	f.LastPath, f.LastToken, f.LastBody, f.LastHeaders = path, token, body, nil
	return f.reply(out)
}

func (f *fakeProvider) Delete(ctx context.Context, path, token string) error {
	f.DeleteCalls++
	f.LastPath, f.LastToken, f.LastBody, f.LastHeaders = path, token, nil, nil
	return f.reply(nil)
}

// memSecrets is an in-memory secrets.Store. FailWrites and FailReads force
// ErrUnavailable wrapping errors on the corresponding operations.
type memSecrets struct {
	Data       map[string]string
	FailReads  bool
	FailWrites bool
}

func newMemSecrets() *memSecrets {
	return &memSecrets{Data: map[string]string{}}
}

func (m *memSecrets) Get(ctx context.Context, key string) (string, error) {
	if m.FailReads {
		return "", fmt.Errorf("%w: get %s", secrets.ErrUnavailable, key)
	}
	return m.Data[key], nil
}

func (m *memSecrets) Set(ctx context.Context, key, value string) error {
	if m.FailWrites {
		return fmt.Errorf("%w: set %s", secrets.ErrUnavailable, key)
	}
	m.Data[key] = value
	return nil
}

func (m *memSecrets) Delete(ctx context.Context, key string) error {
	delete(m.Data, key)
	return nil
}

func (m *memSecrets) Clear(ctx context.Context) error {
	m.Data = map[string]string{}
	return nil
}

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newTestAuth(provider api.RequestProvider, store secrets.Store) AuthService {
	return NewAuthService(provider, session.NewStore(store), testLogger())
}

func TestLoginSuccessPersistsSession(t *testing.T) {
	provider := &fakeProvider{Resp: models.LoginResponse{
		AccessToken:  "access-1",
		RefreshToken: "refresh-1",
		ExpiresIn:    900,
		TokenType:    "Bearer",
	}}
	store := newMemSecrets()
	svc := newTestAuth(provider, store)
	ctx := context.Background()

	res := svc.Login(ctx, "anna@example.com", "pass123")

	require.True(t, res.Ok())
	require.Equal(t, "access-1", res.Data.AccessToken)
	require.Equal(t, "/api/v1/login", provider.LastPath)
	require.Empty(t, provider.LastToken)
	require.Equal(t, "true", provider.LastHeaders["X-Include-Refresh-Token"])

	require.Equal(t, "access-1", store.Data["auth_token"])
	require.Equal(t, "refresh-1", store.Data["auth_refresh_token"])
	require.Equal(t, "anna@example.com", store.Data["auth_user"])
	require.NotEmpty(t, store.Data["auth_token_expiry"])

	ok, err := svc.IsLoggedIn(ctx)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestLoginEmailNotVerifiedCodePassesThrough(t *testing.T) {
	provider := &fakeProvider{Err: &api.AuthenticationError{
		StatusCode: 401,
		Body:       `{"error":{"code":"EMAIL_NOT_VERIFIED","message":"Please verify your email address."}}`,
	}}
	store := newMemSecrets()
	svc := newTestAuth(provider, store)

	res := svc.Login(context.Background(), "anna@example.com", "pass123")

	require.False(t, res.Ok())
	require.False(t, res.IsCancelled())
	require.Equal(t, "EMAIL_NOT_VERIFIED", res.ErrorCode)
	require.Equal(t, "Please verify your email address.", res.ErrorMessage)
	require.Empty(t, store.Data)
}

func TestLoginConnectionError(t *testing.T) {
	provider := &fakeProvider{Err: errors.New("dial tcp: connection refused")}
	svc := newTestAuth(provider, newMemSecrets())

	res := svc.Login(context.Background(), "anna@example.com", "pass123")

	require.False(t, res.Ok())
	require.Equal(t, connectionErrorMessage, res.ErrorMessage)
	require.Empty(t, res.ErrorCode)
}

func TestLoginStorageFailure(t *testing.T) {
	provider := &fakeProvider{Resp: models.LoginResponse{AccessToken: "a", ExpiresIn: 60}}
	store := newMemSecrets()
	store.FailWrites = true
	svc := newTestAuth(provider, store)

	res := svc.Login(context.Background(), "anna@example.com", "pass123")

	require.False(t, res.Ok())
	require.Equal(t, storageErrorMessage, res.ErrorMessage)
}

func TestRegisterValidationErrorsPerField(t *testing.T) {
	provider := &fakeProvider{Err: &api.RequestError{
		StatusCode: 422,
		Body:       `{"error":{"code":"VALIDATION_FAILED","message":"Validation failed.","violations":{"phone":"Invalid phone number format.","email":"Already taken."}}}`,
	}}
	svc := newTestAuth(provider, newMemSecrets())

	res := svc.Register(context.Background(), "anna@example.com", "pass123", "pass123", "not-a-phone")

	require.False(t, res.Ok())
	require.Equal(t, "Validation failed.", res.ErrorMessage)
	require.Equal(t, "VALIDATION_FAILED", res.ErrorCode)
	require.Equal(t, "Invalid phone number format.", res.FieldErrors["phone"])
	require.Equal(t, "Already taken.", res.FieldErrors["email"])
}

func TestRegisterDoesNotAuthenticate(t *testing.T) {
	provider := &fakeProvider{Resp: models.RegisterResponse{ID: 1, Email: "anna@example.com"}}
	store := newMemSecrets()
	svc := newTestAuth(provider, store)

	res := svc.Register(context.Background(), "anna@example.com", "pass123", "pass123", "+48123456789")

	require.True(t, res.Ok())
	require.Equal(t, "/api/v1/register", provider.LastPath)
	require.Empty(t, store.Data)
}

func TestResendVerification(t *testing.T) {
	provider := &fakeProvider{Resp: models.ResendVerificationResponse{Message: "Verification email sent."}}
	svc := newTestAuth(provider, newMemSecrets())

	res := svc.ResendVerification(context.Background(), "anna@example.com")

	require.True(t, res.Ok())
	require.Equal(t, "Verification email sent.", res.Data.Message)
	require.Equal(t, "/api/v1/resend-verification", provider.LastPath)
}

func seedSession(t *testing.T, store secrets.Store, access, refresh, user string) {
	t.Helper()
	sessions := session.NewStore(store)
	require.NoError(t, sessions.Save(context.Background(), access, refresh, user, 900))
}

func TestRefreshSessionSuccess(t *testing.T) {
	store := newMemSecrets()
	seedSession(t, store, "old-access", "old-refresh", "anna@example.com")

	provider := &fakeProvider{Resp: models.LoginResponse{
		AccessToken:  "new-access",
		RefreshToken: "new-refresh",
		ExpiresIn:    900,
	}}
	svc := newTestAuth(provider, store)
	ctx := context.Background()

	res := svc.RefreshSession(ctx)

	require.True(t, res.Ok())
	require.Equal(t, "/api/v1/refresh", provider.LastPath)
	require.Equal(t, "old-refresh", provider.LastToken)
	require.Equal(t, "true", provider.LastHeaders["X-Include-Refresh-Token"])

	require.Equal(t, "new-access", store.Data["auth_token"])
	require.Equal(t, "new-refresh", store.Data["auth_refresh_token"])
	require.Equal(t, "anna@example.com", store.Data["auth_user"])
}

func TestRefreshSessionWithoutTokenMakesNoNetworkCall(t *testing.T) {
	provider := &fakeProvider{}
	svc := newTestAuth(provider, newMemSecrets())

	res := svc.RefreshSession(context.Background())

	require.False(t, res.Ok())
	require.Equal(t, noRefreshTokenMessage, res.ErrorMessage)
	require.Zero(t, provider.PostCalls)
	require.Zero(t, provider.GetCalls)
}

func TestRefreshSessionDegradedSessionClearedLocally(t *testing.T) {
	provider := &fakeProvider{}
	store := newMemSecrets()
	store.Data["auth_token"] = "AT1"
	svc := newTestAuth(provider, store)
	ctx := context.Background()

	res := svc.RefreshSession(ctx)

	require.False(t, res.Ok())
	require.Equal(t, noRefreshTokenMessage, res.ErrorMessage)
	require.Zero(t, provider.PostCalls)
	require.Zero(t, provider.GetCalls)
	require.Empty(t, store.Data)

	sess, err := session.NewStore(store).Load(ctx)
	require.NoError(t, err)
	require.Nil(t, sess)

	ok, err := svc.IsLoggedIn(ctx)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestRefreshSessionRejectedClearsEverything(t *testing.T) {
	store := newMemSecrets()
	seedSession(t, store, "old-access", "old-refresh", "anna@example.com")

	provider := &fakeProvider{Err: &api.AuthenticationError{StatusCode: 403, Body: `{}`}}
	svc := newTestAuth(provider, store)
	ctx := context.Background()

	res := svc.RefreshSession(ctx)

	require.False(t, res.Ok())
	require.Equal(t, sessionExpiredMessage, res.ErrorMessage)
	require.Equal(t, CodeSessionExpired, res.ErrorCode)
	require.Empty(t, store.Data)

	ok, err := svc.IsLoggedIn(ctx)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestRefreshSessionNetworkFailureClearsEverything(t *testing.T) {
	store := newMemSecrets()
	seedSession(t, store, "old-access", "old-refresh", "anna@example.com")

	provider := &fakeProvider{Err: errors.New("dial tcp: i/o timeout")}
	svc := newTestAuth(provider, store)

	res := svc.RefreshSession(context.Background())

	require.False(t, res.Ok())
	require.Equal(t, CodeSessionExpired, res.ErrorCode)
	require.Empty(t, store.Data)
}

func TestRefreshSessionCancelledClearsEverything(t *testing.T) {
	store := newMemSecrets()
	seedSession(t, store, "old-access", "old-refresh", "anna@example.com")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	provider := &fakeProvider{Err: fmt.Errorf("POST /api/v1/refresh: %w", context.Canceled)}
	svc := newTestAuth(provider, store)

	res := svc.RefreshSession(ctx)

	require.True(t, res.IsCancelled())
	require.False(t, res.Ok())
	require.Empty(t, store.Data)
}

func TestLogoutClearsLocallyEvenWhenRevocationFails(t *testing.T) {
	store := newMemSecrets()
	seedSession(t, store, "access", "refresh", "anna@example.com")

	provider := &fakeProvider{Err: errors.New("dial tcp: connection refused")}
	svc := newTestAuth(provider, store)
	ctx := context.Background()

	require.NoError(t, svc.Logout(ctx))
	require.Equal(t, 1, provider.PostCalls)
	require.Equal(t, "/api/v1/logout", provider.LastPath)
	require.Equal(t, "refresh", provider.LastToken)
	require.Empty(t, store.Data)
}

func TestLogoutWithoutRefreshTokenSkipsRevocation(t *testing.T) {
	store := newMemSecrets()
	seedSession(t, store, "access", "", "anna@example.com")

	provider := &fakeProvider{}
	svc := newTestAuth(provider, store)

	require.NoError(t, svc.Logout(context.Background()))
	require.Zero(t, provider.PostCalls)
	require.Empty(t, store.Data)
}

func TestLogoutIsIdempotent(t *testing.T) {
	provider := &fakeProvider{}
	svc := newTestAuth(provider, newMemSecrets())

	require.NoError(t, svc.Logout(context.Background()))
	require.NoError(t, svc.Logout(context.Background()))
}

func TestProfileRequiresAuthentication(t *testing.T) {
	provider := &fakeProvider{}
	svc := newTestAuth(provider, newMemSecrets())

	res := svc.Profile(context.Background())

	require.False(t, res.Ok())
	require.Equal(t, notAuthenticatedMessage, res.ErrorMessage)
	require.Equal(t, CodeNotAuthenticated, res.ErrorCode)
	require.Zero(t, provider.GetCalls)
}

func TestProfileSuccess(t *testing.T) {
	store := newMemSecrets()
	seedSession(t, store, "access", "refresh", "anna@example.com")

	provider := &fakeProvider{Resp: models.UserProfile{
		ID:         1,
		Email:      "anna@example.com",
		TrustLevel: "verified",
	}}
	svc := newTestAuth(provider, store)

	res := svc.Profile(context.Background())

	require.True(t, res.Ok())
	require.Equal(t, "anna@example.com", res.Data.Email)
	require.Equal(t, "/api/private/profile", provider.LastPath)
	require.Equal(t, "access", provider.LastToken)
}

func TestUpdateProfile(t *testing.T) {
	store := newMemSecrets()
	seedSession(t, store, "access", "refresh", "anna@example.com")

	provider := &fakeProvider{Resp: models.UserProfile{ID: 1, Email: "anna@example.com"}}
	svc := newTestAuth(provider, store)

	req := models.UpdateProfileAccountRequest{FirstName: "Anna", LastName: "Kowalska"}
	res := svc.UpdateProfile(context.Background(), req)

	require.True(t, res.Ok())
	require.Equal(t, 1, provider.PutCalls)
	require.Equal(t, "/api/private/profile", provider.LastPath)
	require.Equal(t, req, provider.LastBody)
}

func TestTokenAndCurrentUser(t *testing.T) {
	store := newMemSecrets()
	seedSession(t, store, "access", "refresh", "anna@example.com")
	svc := newTestAuth(&fakeProvider{}, store)
	ctx := context.Background()

	token, err := svc.Token(ctx)
	require.NoError(t, err)
	require.Equal(t, "access", token)

	user, err := svc.CurrentUser(ctx)
	require.NoError(t, err)
	require.Equal(t, "anna@example.com", user)
}

func TestStorageFailureSurfacesAsStorageMessage(t *testing.T) {
	store := newMemSecrets()
	store.FailReads = true
	svc := newTestAuth(&fakeProvider{}, store)

	res := svc.Profile(context.Background())

	require.False(t, res.Ok())
	require.Equal(t, storageErrorMessage, res.ErrorMessage)
}
