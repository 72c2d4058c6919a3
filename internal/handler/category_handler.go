package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kamarlaylatt/my-expense/internal/middleware"
	"github.com/kamarlaylatt/my-expense/internal/models"
	"github.com/kamarlaylatt/my-expense/internal/service"
)

// CategoryHandler handles category CRUD for the authenticated user.
type CategoryHandler struct {
	categories *service.CategoryService
}

type CreateCategoryRequest struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	Color       *string `json:"color" validate:"omitempty,hexcolor6"`
}

type UpdateCategoryRequest struct {
	Name        *string                 `json:"name" validate:"omitempty,min=1,max=100"`
	Description models.Optional[string] `json:"description"`
	Color       models.Optional[string] `json:"color"`
}

func NewCategoryHandler(categories *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

func (h *CategoryHandler) Create(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	category, err := h.categories.Create(c.Request.Context(), userID, service.CreateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	middleware.RespondWithMessage(c, http.StatusCreated, "Category created successfully", gin.H{"category": category})
}

func (h *CategoryHandler) List(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	categories, err := h.categories.List(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	middleware.RespondWithData(c, http.StatusOK, gin.H{"categories": categories})
}

func (h *CategoryHandler) Get(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	id, ok := parseIDParam(c, "Category")
	if !ok {
		return
	}

	category, err := h.categories.Get(c.Request.Context(), userID, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	middleware.RespondWithData(c, http.StatusOK, gin.H{"category": category})
}

func (h *CategoryHandler) Update(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	id, ok := parseIDParam(c, "Category")
	if !ok {
		return
	}

	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := validateUpdateCategory(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	category, err := h.categories.Update(c.Request.Context(), userID, id, service.UpdateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	middleware.RespondWithMessage(c, http.StatusOK, "Category updated successfully", gin.H{"category": category})
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	id, ok := parseIDParam(c, "Category")
	if !ok {
		return
	}

	if err := h.categories.Delete(c.Request.Context(), userID, id); err != nil {
		respondServiceError(c, err)
		return
	}

	middleware.RespondWithMessage(c, http.StatusOK, "Category deleted successfully", nil)
}

// validateUpdateCategory covers the Optional fields the struct-tag validator
// cannot reach.
func validateUpdateCategory(req UpdateCategoryRequest) []middleware.ValidationError {
	validationErrors := middleware.ValidateRequest(req)
	if req.Description.Valid && len(req.Description.Value) > 500 {
		validationErrors = append(validationErrors, middleware.ValidationError{
			Field: "description", Message: "Value is too long", Type: "max",
		})
	}
	if req.Color.Valid && !middleware.IsHexColor(req.Color.Value) {
		validationErrors = append(validationErrors, middleware.ValidationError{
			Field: "color", Message: "Color must be a valid hex color (e.g., #FF5733)", Type: "hexcolor6",
		})
	}
	return validationErrors
}
