package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/nurbekov/user-service/api/http/handlers"
	"github.com/nurbekov/user-service/pkg/health"
	"github.com/nurbekov/user-service/pkg/security/jwt"
	"github.com/nurbekov/user-service/pkg/user"
)

// memoryRepo backs the routing tests with an in-memory store.
type memoryRepo struct {
	users map[uuid.UUID]user.User
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{users: make(map[uuid.UUID]user.User)}
}

func (r *memoryRepo) Create(ctx context.Context, u user.User) error {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return user.ErrEmailTaken
		}
	}
	r.users[u.ID] = u
	return nil
}

func (r *memoryRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (r *memoryRepo) GetByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (r *memoryRepo) List(ctx context.Context) ([]user.User, error) {
	out := make([]user.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *memoryRepo) Update(ctx context.Context, u user.User) error {
	if _, ok := r.users[u.ID]; !ok {
		return user.ErrNotFound
	}
	r.users[u.ID] = u
	return nil
}

func (r *memoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.users[id]; !ok {
		return user.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

type okChecker struct{}

func (okChecker) Name() string                    { return "ok" }
func (okChecker) Check(ctx context.Context) error { return nil }

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	gen := jwt.NewGenerator("test-secret", "user-service", time.Hour)
	uc := user.NewService(newMemoryRepo(), gen)

	app := fiber.New()
	Register(app,
		handlers.NewAuthHandler(uc, logger),
		handlers.NewUserHandler(uc, logger),
		handlers.NewHealthHandler(health.NewService(okChecker{})),
		jwt.NewAuthMiddleware(gen),
	)
	return app
}

func request(t *testing.T, app *fiber.App, method, target, token string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, target, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

// Full account lifecycle through the real routes, use case, token
// generator and auth middleware.
func TestAccountLifecycle(t *testing.T) {
	app := newTestApp(t)

	resp := request(t, app, http.MethodPost, "/api/users/register", "", fiber.Map{
		"name": "Ann", "email": "a@x.com", "password": "secret1",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var login struct {
		Message string `json:"message"`
		Token   string `json:"token"`
	}
	resp = request(t, app, http.MethodPost, "/api/users/login", "", fiber.Map{
		"email": "a@x.com", "password": "secret1",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &login)
	require.NotEmpty(t, login.Token)

	var users []map[string]any
	resp = request(t, app, http.MethodGet, "/api/users", login.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &users)
	require.Len(t, users, 1)
	require.Equal(t, "Ann", users[0]["name"])
	require.NotContains(t, users[0], "passwordHash")
	id := users[0]["id"].(string)

	var got map[string]any
	resp = request(t, app, http.MethodGet, "/api/users/"+id, login.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &got)
	require.Equal(t, "Ann", got["name"])
	require.Equal(t, "a@x.com", got["email"])

	resp = request(t, app, http.MethodPut, "/api/users/"+id, login.Token, fiber.Map{"name": "Anna"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = request(t, app, http.MethodGet, "/api/users/"+id, login.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &got)
	require.Equal(t, "Anna", got["name"])
	require.Equal(t, "a@x.com", got["email"])

	resp = request(t, app, http.MethodDelete, "/api/users/"+id, login.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = request(t, app, http.MethodGet, "/api/users/"+id, login.Token, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	app := newTestApp(t)

	for _, tc := range []struct{ method, target string }{
		{http.MethodGet, "/api/users"},
		{http.MethodGet, "/api/users/" + uuid.NewString()},
		{http.MethodPut, "/api/users/" + uuid.NewString()},
		{http.MethodDelete, "/api/users/" + uuid.NewString()},
	} {
		resp := request(t, app, tc.method, tc.target, "", nil)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode, "%s %s", tc.method, tc.target)
	}
}

func TestRegisterAndLoginAreUnauthenticated(t *testing.T) {
	app := newTestApp(t)

	resp := request(t, app, http.MethodPost, "/api/users/register", "", fiber.Map{
		"name": "Ann", "email": "a@x.com", "password": "secret1",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = request(t, app, http.MethodPost, "/api/users/login", "", fiber.Map{
		"email": "a@x.com", "password": "secret1",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestDuplicateRegister(t *testing.T) {
	app := newTestApp(t)

	resp := request(t, app, http.MethodPost, "/api/users/register", "", fiber.Map{
		"name": "Ann", "email": "a@x.com", "password": "secret1",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = request(t, app, http.MethodPost, "/api/users/register", "", fiber.Map{
		"name": "Bob", "email": "a@x.com", "password": "other",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHealthEndpoints(t *testing.T) {
	app := newTestApp(t)

	resp := request(t, app, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = request(t, app, http.MethodGet, "/ready", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}
