package handler_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kamarlaylatt/my-expense/internal/repository"
	"github.com/kamarlaylatt/my-expense/internal/server"
)

// envelope mirrors the uniform response wrapper for decoding in tests.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"errors"`
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := repository.NewDB(dsn, false)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	return server.New(db, server.Options{
		JWTSecret: "test-secret",
		JWTExpiry: time.Hour,
	})
}

func doRequest(router *gin.Engine, method, url, token string, body any) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = strings.NewReader(string(b))
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, url, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v; body: %s", err, w.Body.String())
	}
	return env
}

// decodeData unmarshals the envelope's data field into out.
func decodeData(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	env := decodeEnvelope(t, w)
	if err := json.Unmarshal(env.Data, out); err != nil {
		t.Fatalf("decode data: %v; body: %s", err, w.Body.String())
	}
}

// signup registers a user and returns their bearer token and ID.
func signup(t *testing.T, router *gin.Engine, email string) (string, uint) {
	t.Helper()
	w := doRequest(router, http.MethodPost, "/api/auth/signup", "", map[string]any{
		"email":    email,
		"password": "password123",
		"name":     "Test User",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("signup %s: expected 201 got %d; body: %s", email, w.Code, w.Body.String())
	}
	var data struct {
		User struct {
			ID uint `json:"id"`
		} `json:"user"`
		Token string `json:"token"`
	}
	decodeData(t, w, &data)
	return data.Token, data.User.ID
}

// createCategory creates a category and returns its ID.
func createCategory(t *testing.T, router *gin.Engine, token, name string) uint {
	t.Helper()
	w := doRequest(router, http.MethodPost, "/api/categories", token, map[string]any{"name": name})
	if w.Code != http.StatusCreated {
		t.Fatalf("create category %s: expected 201 got %d; body: %s", name, w.Code, w.Body.String())
	}
	var data struct {
		Category struct {
			ID uint `json:"id"`
		} `json:"category"`
	}
	decodeData(t, w, &data)
	return data.Category.ID
}

// createCurrency creates a currency and returns its ID.
func createCurrency(t *testing.T, router *gin.Engine, token, name string) uint {
	t.Helper()
	w := doRequest(router, http.MethodPost, "/api/currencies", token, map[string]any{
		"name":            name,
		"usdExchangeRate": 1.0,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create currency %s: expected 201 got %d; body: %s", name, w.Code, w.Body.String())
	}
	var data struct {
		Currency struct {
			ID uint `json:"id"`
		} `json:"currency"`
	}
	decodeData(t, w, &data)
	return data.Currency.ID
}

// createExpense creates an expense and returns its ID.
func createExpense(t *testing.T, router *gin.Engine, token string, body map[string]any) uint {
	t.Helper()
	w := doRequest(router, http.MethodPost, "/api/expenses", token, body)
	if w.Code != http.StatusCreated {
		t.Fatalf("create expense: expected 201 got %d; body: %s", w.Code, w.Body.String())
	}
	var data struct {
		Expense struct {
			ID uint `json:"id"`
		} `json:"expense"`
	}
	decodeData(t, w, &data)
	return data.Expense.ID
}
