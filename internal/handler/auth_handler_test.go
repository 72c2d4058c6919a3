package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignup(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodPost, "/api/auth/signup", "", map[string]any{
		"email":    "alice@example.com",
		"password": "password123",
		"name":     "Alice",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var data struct {
		User struct {
			ID    uint   `json:"id"`
			Email string `json:"email"`
			Name  string `json:"name"`
		} `json:"user"`
		Token string `json:"token"`
	}
	decodeData(t, w, &data)
	assert.Equal(t, "alice@example.com", data.User.Email)
	assert.Equal(t, "Alice", data.User.Name)
	assert.NotEmpty(t, data.Token)
	assert.NotContains(t, w.Body.String(), "password")

	// Duplicate email is a conflict.
	w = doRequest(router, http.MethodPost, "/api/auth/signup", "", map[string]any{
		"email":    "alice@example.com",
		"password": "different456",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "User with this email already exists", decodeEnvelope(t, w).Message)
}

func TestSignupValidation(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name string
		body map[string]any
	}{
		{"missing email", map[string]any{"password": "password123"}},
		{"invalid email", map[string]any{"email": "not-an-email", "password": "password123"}},
		{"short password", map[string]any{"email": "a@b.com", "password": "abc"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, http.MethodPost, "/api/auth/signup", "", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			env := decodeEnvelope(t, w)
			assert.False(t, env.Success)
			assert.NotEmpty(t, env.Errors)
		})
	}
}

func TestSignin(t *testing.T) {
	router := newTestRouter(t)
	signup(t, router, "bob@example.com")

	w := doRequest(router, http.MethodPost, "/api/auth/signin", "", map[string]any{
		"email":    "bob@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var data struct {
		Token string `json:"token"`
	}
	decodeData(t, w, &data)
	assert.NotEmpty(t, data.Token)

	// Wrong password and unknown email produce the identical message so
	// neither response confirms an account exists.
	wrongPw := doRequest(router, http.MethodPost, "/api/auth/signin", "", map[string]any{
		"email":    "bob@example.com",
		"password": "wrongpassword",
	})
	unknown := doRequest(router, http.MethodPost, "/api/auth/signin", "", map[string]any{
		"email":    "nobody@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusUnauthorized, wrongPw.Code)
	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.Equal(t, decodeEnvelope(t, wrongPw).Message, decodeEnvelope(t, unknown).Message)
}

func TestProfile(t *testing.T) {
	router := newTestRouter(t)
	token, userID := signup(t, router, "carol@example.com")

	w := doRequest(router, http.MethodGet, "/api/auth/profile", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var data struct {
		User struct {
			ID    uint   `json:"id"`
			Email string `json:"email"`
		} `json:"user"`
	}
	decodeData(t, w, &data)
	assert.Equal(t, userID, data.User.ID)
	assert.Equal(t, "carol@example.com", data.User.Email)

	tests := []struct {
		name  string
		token string
	}{
		{"no token", ""},
		{"garbage token", "not.a.token"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, http.MethodGet, "/api/auth/profile", tt.token, nil)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestGoogleCallback(t *testing.T) {
	router := newTestRouter(t)

	body := map[string]any{
		"email":             "dave@example.com",
		"provider":          "google",
		"providerAccountId": "g-123",
	}

	w := doRequest(router, http.MethodPost, "/api/auth/google", "", body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var first struct {
		User struct {
			ID            uint   `json:"id"`
			Name          string `json:"name"`
			EmailVerified bool   `json:"emailVerified"`
		} `json:"user"`
		Token string `json:"token"`
	}
	decodeData(t, w, &first)
	// Name derives from the email local part when none is supplied.
	assert.Equal(t, "dave", first.User.Name)
	assert.True(t, first.User.EmailVerified)
	assert.NotEmpty(t, first.Token)

	// Second call resolves to the same user, not a duplicate.
	w = doRequest(router, http.MethodPost, "/api/auth/google", "", body)
	require.Equal(t, http.StatusOK, w.Code)
	var second struct {
		User struct {
			ID uint `json:"id"`
		} `json:"user"`
	}
	decodeData(t, w, &second)
	assert.Equal(t, first.User.ID, second.User.ID)
}

func TestGoogleCallbackLinksExistingEmail(t *testing.T) {
	router := newTestRouter(t)
	_, localID := signup(t, router, "erin@example.com")

	w := doRequest(router, http.MethodPost, "/api/auth/google", "", map[string]any{
		"email":             "erin@example.com",
		"provider":          "google",
		"providerAccountId": "g-456",
		"image":             "https://example.com/erin.png",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var data struct {
		User struct {
			ID            uint   `json:"id"`
			Provider      string `json:"provider"`
			EmailVerified bool   `json:"emailVerified"`
		} `json:"user"`
	}
	decodeData(t, w, &data)
	assert.Equal(t, localID, data.User.ID)
	assert.Equal(t, "google", data.User.Provider)
	assert.True(t, data.User.EmailVerified)

	// The linked account still signs in with its password.
	w = doRequest(router, http.MethodPost, "/api/auth/signin", "", map[string]any{
		"email":    "erin@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGoogleCallbackMissingFields(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodPost, "/api/auth/google", "", map[string]any{
		"email": "frank@example.com",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUnknownRoute(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/api/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Route not found", decodeEnvelope(t, w).Message)
}
