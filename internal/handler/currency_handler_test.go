package handler_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrencyCRUD(t *testing.T) {
	router := newTestRouter(t)
	token, _ := signup(t, router, "a@example.com")

	w := doRequest(router, http.MethodPost, "/api/currencies", token, map[string]any{
		"name":            "EUR",
		"usdExchangeRate": 1.08,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created struct {
		Currency struct {
			ID              uint    `json:"id"`
			Name            string  `json:"name"`
			USDExchangeRate float64 `json:"usdExchangeRate"`
		} `json:"currency"`
	}
	decodeData(t, w, &created)
	assert.Equal(t, 1.08, created.Currency.USDExchangeRate)

	w = doRequest(router, http.MethodPut, fmt.Sprintf("/api/currencies/%d", created.Currency.ID), token, map[string]any{
		"usdExchangeRate": 1.10,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var updated struct {
		Currency struct {
			Name            string  `json:"name"`
			USDExchangeRate float64 `json:"usdExchangeRate"`
		} `json:"currency"`
	}
	decodeData(t, w, &updated)
	assert.Equal(t, "EUR", updated.Currency.Name)
	assert.Equal(t, 1.10, updated.Currency.USDExchangeRate)

	w = doRequest(router, http.MethodGet, "/api/currencies", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Currencies []struct {
			ID uint `json:"id"`
		} `json:"currencies"`
	}
	decodeData(t, w, &list)
	assert.Len(t, list.Currencies, 1)

	w = doRequest(router, http.MethodDelete, fmt.Sprintf("/api/currencies/%d", created.Currency.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = doRequest(router, http.MethodGet, fmt.Sprintf("/api/currencies/%d", created.Currency.ID), token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCurrencyValidation(t *testing.T) {
	router := newTestRouter(t)
	token, _ := signup(t, router, "a@example.com")

	tests := []struct {
		name string
		body map[string]any
	}{
		{"missing rate", map[string]any{"name": "GBP"}},
		{"zero rate", map[string]any{"name": "GBP", "usdExchangeRate": 0}},
		{"negative rate", map[string]any{"name": "GBP", "usdExchangeRate": -1.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, http.MethodPost, "/api/currencies", token, tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
		})
	}
}

func TestCurrencyDuplicateName(t *testing.T) {
	router := newTestRouter(t)
	tokenA, _ := signup(t, router, "a@example.com")
	tokenB, _ := signup(t, router, "b@example.com")

	createCurrency(t, router, tokenA, "USD")

	w := doRequest(router, http.MethodPost, "/api/currencies", tokenA, map[string]any{
		"name":            "USD",
		"usdExchangeRate": 1.0,
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Currency with this name already exists", decodeEnvelope(t, w).Message)

	w = doRequest(router, http.MethodPost, "/api/currencies", tokenB, map[string]any{
		"name":            "USD",
		"usdExchangeRate": 1.0,
	})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCurrencyCrossUserIsolation(t *testing.T) {
	router := newTestRouter(t)
	tokenA, _ := signup(t, router, "a@example.com")
	tokenB, _ := signup(t, router, "b@example.com")

	currencyID := createCurrency(t, router, tokenA, "USD")

	for _, method := range []string{http.MethodGet, http.MethodDelete} {
		w := doRequest(router, method, fmt.Sprintf("/api/currencies/%d", currencyID), tokenB, nil)
		assert.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
	}
}

func TestCurrencyDeleteBlockedWhileInUse(t *testing.T) {
	router := newTestRouter(t)
	token, _ := signup(t, router, "a@example.com")

	categoryID := createCategory(t, router, token, "Food")
	currencyID := createCurrency(t, router, token, "USD")
	first := createExpense(t, router, token, map[string]any{
		"amount":     5.0,
		"categoryId": categoryID,
		"currencyId": currencyID,
	})
	second := createExpense(t, router, token, map[string]any{
		"amount":     7.5,
		"categoryId": categoryID,
		"currencyId": currencyID,
	})

	w := doRequest(router, http.MethodDelete, fmt.Sprintf("/api/currencies/%d", currencyID), token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeEnvelope(t, w).Message, "2 expense(s)")

	// Removing the dependent expenses unblocks the deletion.
	for _, id := range []uint{first, second} {
		w = doRequest(router, http.MethodDelete, fmt.Sprintf("/api/expenses/%d", id), token, nil)
		require.Equal(t, http.StatusOK, w.Code)
	}
	w = doRequest(router, http.MethodDelete, fmt.Sprintf("/api/currencies/%d", currencyID), token, nil)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}
