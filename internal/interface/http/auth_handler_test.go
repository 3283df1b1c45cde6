package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightroof/solar-leads/internal/application"
	"github.com/brightroof/solar-leads/internal/domain/entity"
	"github.com/brightroof/solar-leads/internal/interface/middleware"
	"github.com/brightroof/solar-leads/internal/session"
	"github.com/brightroof/solar-leads/pkg/helpers"
	"github.com/brightroof/solar-leads/pkg/validation"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	validation.Init()
	os.Exit(m.Run())
}

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// mockAuthService implements the AuthService interface consumed by the handler.
type mockAuthService struct {
	SignupFunc func(ctx context.Context, username, email, password string) (*entity.User, error)
	LoginFunc  func(ctx context.Context, username, password string) (*entity.User, error)
}

func (m *mockAuthService) Signup(ctx context.Context, username, email, password string) (*entity.User, error) {
	if m.SignupFunc != nil {
		return m.SignupFunc(ctx, username, email, password)
	}
	return &entity.User{ID: "u-1", Username: username, Email: email}, nil
}

func (m *mockAuthService) Login(ctx context.Context, username, password string) (*entity.User, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, username, password)
	}
	return nil, application.ErrUserNotFound
}

func newAuthRig(svc AuthService) (*gin.Engine, *session.MemoryStore) {
	store := session.NewMemoryStore(time.Hour)
	cookies := helpers.NewCookie("session_token", "localhost", false)
	h := NewAuthHandler(svc, store, cookies, testLogger(), time.Hour)

	r := gin.New()
	r.POST("/signup", h.Signup)
	r.POST("/login", h.Login)
	r.GET("/account", middleware.OptionalSession(store, cookies), h.Account)
	r.POST("/logout", middleware.RequireSession(store, cookies), h.Logout)
	return r, store
}

func postJSON(r *gin.Engine, path string, body gin.H) *httptest.ResponseRecorder {
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_Signup(t *testing.T) {
	tests := []struct {
		name       string
		body       gin.H
		signupFunc func(ctx context.Context, username, email, password string) (*entity.User, error)
		wantStatus int
		wantBody   gin.H
	}{
		{
			name:       "registers a new user",
			body:       gin.H{"username": "alice", "email": "alice@example.com", "password": "password123"},
			wantStatus: http.StatusOK,
			wantBody:   gin.H{"success": true, "message": "User registered successfully!"},
		},
		{
			name:       "missing field names the culprit in details",
			body:       gin.H{"username": "alice", "password": "password123"},
			wantStatus: http.StatusBadRequest,
			wantBody: gin.H{
				"success": false,
				"error":   "All fields are required",
				"details": map[string]any{"email": "is required"},
			},
		},
		{
			name: "username or email taken",
			body: gin.H{"username": "alice", "email": "alice@example.com", "password": "password123"},
			signupFunc: func(_ context.Context, _, _, _ string) (*entity.User, error) {
				return nil, application.ErrUserExists
			},
			wantStatus: http.StatusConflict,
			wantBody:   gin.H{"success": false, "error": "User already exists"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := newAuthRig(&mockAuthService{SignupFunc: tt.signupFunc})
			w := postJSON(r, "/signup", tt.body)

			assert.Equal(t, tt.wantStatus, w.Code)
			var got gin.H
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			assert.Equal(t, tt.wantBody, got)
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	user := &entity.User{ID: "u-1", Username: "alice", Email: "alice@example.com"}

	t.Run("success sets the session cookie", func(t *testing.T) {
		r, store := newAuthRig(&mockAuthService{
			LoginFunc: func(_ context.Context, username, password string) (*entity.User, error) {
				return user, nil
			},
		})
		w := postJSON(r, "/login", gin.H{"username": "alice", "password": "password123"})

		require.Equal(t, http.StatusOK, w.Code)
		var got gin.H
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, gin.H{"success": true, "message": "Login successful!"}, got)

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		c := cookies[0]
		assert.Equal(t, "session_token", c.Name)
		assert.True(t, c.HttpOnly)
		assert.NotEmpty(t, c.Value)

		// Cookie value must resolve in the store.
		ident, err := store.Get(context.Background(), c.Value)
		require.NoError(t, err)
		assert.Equal(t, "u-1", ident.UserID)
		assert.Equal(t, "alice@example.com", ident.Email)
	})

	t.Run("unknown user", func(t *testing.T) {
		r, _ := newAuthRig(&mockAuthService{
			LoginFunc: func(_ context.Context, _, _ string) (*entity.User, error) {
				return nil, application.ErrUserNotFound
			},
		})
		w := postJSON(r, "/login", gin.H{"username": "nobody", "password": "x"})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "User not found")
		assert.Empty(t, w.Result().Cookies(), "failed login must not issue a cookie")
	})

	t.Run("wrong password", func(t *testing.T) {
		r, _ := newAuthRig(&mockAuthService{
			LoginFunc: func(_ context.Context, _, _ string) (*entity.User, error) {
				return nil, application.ErrIncorrectPassword
			},
		})
		w := postJSON(r, "/login", gin.H{"username": "alice", "password": "wrong"})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Incorrect password")
	})

	t.Run("missing credentials", func(t *testing.T) {
		r, _ := newAuthRig(&mockAuthService{})
		w := postJSON(r, "/login", gin.H{"username": "alice"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Username and password are required")
	})
}

func TestAuthHandler_Account(t *testing.T) {
	t.Run("anonymous", func(t *testing.T) {
		r, _ := newAuthRig(&mockAuthService{})
		req := httptest.NewRequest(http.MethodGet, "/account", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success":false,"email":null}`, w.Body.String())
	})

	t.Run("authenticated", func(t *testing.T) {
		r, store := newAuthRig(&mockAuthService{})
		token, err := store.Create(context.Background(), session.Identity{UserID: "u-1", Email: "alice@example.com"})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/account", nil)
		req.AddCookie(&http.Cookie{Name: "session_token", Value: token})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success":true,"email":"alice@example.com"}`, w.Body.String())
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	t.Run("invalidates the session and clears the cookie", func(t *testing.T) {
		r, store := newAuthRig(&mockAuthService{})
		token, err := store.Create(context.Background(), session.Identity{UserID: "u-1", Email: "alice@example.com"})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/logout", nil)
		req.AddCookie(&http.Cookie{Name: "session_token", Value: token})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		_, err = store.Get(context.Background(), token)
		assert.ErrorIs(t, err, session.ErrNotFound)

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "session_token", cookies[0].Name)
		assert.Empty(t, cookies[0].Value)
		assert.Negative(t, cookies[0].MaxAge)
	})

	t.Run("rejected without a session", func(t *testing.T) {
		r, _ := newAuthRig(&mockAuthService{})
		req := httptest.NewRequest(http.MethodPost, "/logout", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.True(t, strings.Contains(w.Body.String(), "Unauthorized"))
	})
}
