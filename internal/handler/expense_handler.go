package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kamarlaylatt/my-expense/internal/middleware"
	"github.com/kamarlaylatt/my-expense/internal/models"
	"github.com/kamarlaylatt/my-expense/internal/repository"
	"github.com/kamarlaylatt/my-expense/internal/service"
)

// ExpenseHandler handles expense CRUD and the summary report for the
// authenticated user.
type ExpenseHandler struct {
	expenses *service.ExpenseService
}

type CreateExpenseRequest struct {
	Amount      float64 `json:"amount" validate:"required,gt=0,lte=99999999.99"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	Date        *string `json:"date"`
	CategoryID  uint    `json:"categoryId" validate:"required,gt=0"`
	CurrencyID  uint    `json:"currencyId" validate:"required,gt=0"`
}

type UpdateExpenseRequest struct {
	Amount      *float64                `json:"amount" validate:"omitempty,gt=0,lte=99999999.99"`
	Description models.Optional[string] `json:"description"`
	Date        *string                 `json:"date"`
	CategoryID  *uint                   `json:"categoryId" validate:"omitempty,gt=0"`
	CurrencyID  *uint                   `json:"currencyId" validate:"omitempty,gt=0"`
}

func NewExpenseHandler(expenses *service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenses: expenses}
}

func (h *ExpenseHandler) Create(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	var date *time.Time
	if req.Date != nil && *req.Date != "" {
		parsed, err := parseDate(*req.Date)
		if err != nil {
			middleware.RespondWithValidationError(c, dateValidationError("date"))
			return
		}
		date = &parsed
	}

	expense, err := h.expenses.Create(c.Request.Context(), userID, service.CreateExpenseInput{
		Amount:      req.Amount,
		Description: req.Description,
		Date:        date,
		CategoryID:  req.CategoryID,
		CurrencyID:  req.CurrencyID,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	middleware.RespondWithMessage(c, http.StatusCreated, "Expense created successfully", gin.H{"expense": expense})
}

func (h *ExpenseHandler) List(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	filter, validationErrors := parseExpenseFilter(c)
	if validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	page := parsePositiveInt(c.Query("page"), 1)
	limit := parsePositiveInt(c.Query("limit"), 10)

	list, err := h.expenses.List(c.Request.Context(), userID, filter, page, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	middleware.RespondWithData(c, http.StatusOK, list)
}

func (h *ExpenseHandler) Get(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	id, ok := parseIDParam(c, "Expense")
	if !ok {
		return
	}

	expense, err := h.expenses.Get(c.Request.Context(), userID, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	middleware.RespondWithData(c, http.StatusOK, gin.H{"expense": expense})
}

func (h *ExpenseHandler) Update(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	id, ok := parseIDParam(c, "Expense")
	if !ok {
		return
	}

	var req UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := validateUpdateExpense(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	var date *time.Time
	if req.Date != nil && *req.Date != "" {
		parsed, err := parseDate(*req.Date)
		if err != nil {
			middleware.RespondWithValidationError(c, dateValidationError("date"))
			return
		}
		date = &parsed
	}

	expense, err := h.expenses.Update(c.Request.Context(), userID, id, service.UpdateExpenseInput{
		Amount:      req.Amount,
		Description: req.Description,
		Date:        date,
		CategoryID:  req.CategoryID,
		CurrencyID:  req.CurrencyID,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	middleware.RespondWithMessage(c, http.StatusOK, "Expense updated successfully", gin.H{"expense": expense})
}

func (h *ExpenseHandler) Delete(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	id, ok := parseIDParam(c, "Expense")
	if !ok {
		return
	}

	if err := h.expenses.Delete(c.Request.Context(), userID, id); err != nil {
		respondServiceError(c, err)
		return
	}

	middleware.RespondWithMessage(c, http.StatusOK, "Expense deleted successfully", nil)
}

func (h *ExpenseHandler) Summary(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	filter, validationErrors := parseExpenseFilter(c)
	if validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	summary, err := h.expenses.Summarize(c.Request.Context(), userID, filter.StartDate, filter.EndDate)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	middleware.RespondWithData(c, http.StatusOK, gin.H{"summary": summary})
}

// parseExpenseFilter reads the categoryId/startDate/endDate query params
// shared by the list and summary endpoints.
func parseExpenseFilter(c *gin.Context) (repository.ExpenseFilter, []middleware.ValidationError) {
	var filter repository.ExpenseFilter

	if raw := c.Query("categoryId"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return filter, []middleware.ValidationError{{
				Field: "categoryId", Message: "Category ID must be a number", Type: "number",
			}}
		}
		v := uint(id)
		filter.CategoryID = &v
	}
	if raw := c.Query("startDate"); raw != "" {
		t, err := parseDate(raw)
		if err != nil {
			return filter, dateValidationError("startDate")
		}
		filter.StartDate = &t
	}
	if raw := c.Query("endDate"); raw != "" {
		t, err := parseDate(raw)
		if err != nil {
			return filter, dateValidationError("endDate")
		}
		filter.EndDate = &t
	}
	return filter, nil
}

func parsePositiveInt(raw string, def int) int {
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return def
	}
	return n
}

// validateUpdateExpense appends the description length check the struct-tag
// validator cannot express for Optional fields.
func validateUpdateExpense(req UpdateExpenseRequest) []middleware.ValidationError {
	validationErrors := middleware.ValidateRequest(req)
	if req.Description.Valid && len(req.Description.Value) > 500 {
		validationErrors = append(validationErrors, middleware.ValidationError{
			Field: "description", Message: "Value is too long", Type: "max",
		})
	}
	return validationErrors
}
