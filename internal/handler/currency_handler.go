package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kamarlaylatt/my-expense/internal/middleware"
	"github.com/kamarlaylatt/my-expense/internal/service"
)

// CurrencyHandler handles currency CRUD for the authenticated user.
type CurrencyHandler struct {
	currencies *service.CurrencyService
}

type CreateCurrencyRequest struct {
	Name            string  `json:"name" validate:"required,max=50"`
	USDExchangeRate float64 `json:"usdExchangeRate" validate:"required,gt=0"`
}

type UpdateCurrencyRequest struct {
	Name            *string  `json:"name" validate:"omitempty,min=1,max=50"`
	USDExchangeRate *float64 `json:"usdExchangeRate" validate:"omitempty,gt=0"`
}

func NewCurrencyHandler(currencies *service.CurrencyService) *CurrencyHandler {
	return &CurrencyHandler{currencies: currencies}
}

func (h *CurrencyHandler) Create(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var req CreateCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	currency, err := h.currencies.Create(c.Request.Context(), userID, service.CreateCurrencyInput{
		Name:            req.Name,
		USDExchangeRate: req.USDExchangeRate,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	middleware.RespondWithMessage(c, http.StatusCreated, "Currency created successfully", gin.H{"currency": currency})
}

func (h *CurrencyHandler) List(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	currencies, err := h.currencies.List(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	middleware.RespondWithData(c, http.StatusOK, gin.H{"currencies": currencies})
}

func (h *CurrencyHandler) Get(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	id, ok := parseIDParam(c, "Currency")
	if !ok {
		return
	}

	currency, err := h.currencies.Get(c.Request.Context(), userID, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	middleware.RespondWithData(c, http.StatusOK, gin.H{"currency": currency})
}

func (h *CurrencyHandler) Update(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	id, ok := parseIDParam(c, "Currency")
	if !ok {
		return
	}

	var req UpdateCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	currency, err := h.currencies.Update(c.Request.Context(), userID, id, service.UpdateCurrencyInput{
		Name:            req.Name,
		USDExchangeRate: req.USDExchangeRate,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	middleware.RespondWithMessage(c, http.StatusOK, "Currency updated successfully", gin.H{"currency": currency})
}

func (h *CurrencyHandler) Delete(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	id, ok := parseIDParam(c, "Currency")
	if !ok {
		return
	}

	if err := h.currencies.Delete(c.Request.Context(), userID, id); err != nil {
		respondServiceError(c, err)
		return
	}

	middleware.RespondWithMessage(c, http.StatusOK, "Currency deleted successfully", nil)
}
