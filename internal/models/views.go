package models

import "time"

// UserView is the sanitized projection of a user attached to the request
// context and returned by auth endpoints. It never exposes the password hash.
type UserView struct {
	ID                uint      `json:"id"`
	Email             string    `json:"email"`
	Name              string    `json:"name"`
	Provider          *string   `json:"provider,omitempty"`
	ProviderAccountID *string   `json:"providerAccountId,omitempty"`
	EmailVerified     bool      `json:"emailVerified"`
	Image             *string   `json:"image,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

func NewUserView(u *User) *UserView {
	return &UserView{
		ID:                u.ID,
		Email:             u.Email,
		Name:              u.Name,
		Provider:          u.Provider,
		ProviderAccountID: u.ProviderAccountID,
		EmailVerified:     u.EmailVerified,
		Image:             u.Image,
		CreatedAt:         u.CreatedAt,
		UpdatedAt:         u.UpdatedAt,
	}
}

// CategoryRef is the trimmed category object embedded in expense responses
// and summary rows.
type CategoryRef struct {
	ID    uint    `json:"id"`
	Name  string  `json:"name"`
	Color *string `json:"color"`
}

// CurrencyRef is the trimmed currency object embedded in expense responses.
type CurrencyRef struct {
	ID              uint    `json:"id"`
	Name            string  `json:"name"`
	USDExchangeRate float64 `json:"usdExchangeRate"`
}

// ExpenseView is an expense with its category and currency references
// resolved for response shaping.
type ExpenseView struct {
	ID          uint        `json:"id"`
	Amount      float64     `json:"amount"`
	Description *string     `json:"description"`
	Date        time.Time   `json:"date"`
	CategoryID  uint        `json:"categoryId"`
	CurrencyID  uint        `json:"currencyId"`
	UserID      uint        `json:"userId"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
	Category    CategoryRef `json:"category"`
	Currency    CurrencyRef `json:"currency"`
}

func NewExpenseView(e *Expense) *ExpenseView {
	return &ExpenseView{
		ID:          e.ID,
		Amount:      e.Amount,
		Description: e.Description,
		Date:        e.Date,
		CategoryID:  e.CategoryID,
		CurrencyID:  e.CurrencyID,
		UserID:      e.UserID,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
		Category:    CategoryRef{ID: e.Category.ID, Name: e.Category.Name, Color: e.Category.Color},
		Currency:    CurrencyRef{ID: e.Currency.ID, Name: e.Currency.Name, USDExchangeRate: e.Currency.USDExchangeRate},
	}
}

// CategoryView is a category with its dependent expense count.
type CategoryView struct {
	Category
	ExpenseCount int64 `json:"expenseCount"`
}

// Pagination describes a page of a list response.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// CategorySummary is one row of the expense summary report.
type CategorySummary struct {
	Category    CategoryRef `json:"category"`
	TotalAmount float64     `json:"totalAmount"`
	Count       int64       `json:"count"`
}

// ExpenseSummary is the aggregation report for a user within an optional
// date window. TotalAmount is 0, never absent, when nothing matches.
type ExpenseSummary struct {
	TotalAmount float64           `json:"totalAmount"`
	TotalCount  int64             `json:"totalCount"`
	ByCategory  []CategorySummary `json:"byCategory"`
}
