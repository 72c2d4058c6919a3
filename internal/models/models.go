package models

import "time"

// User is the account owner for all other entities. Password is nil for
// accounts created through an external identity provider.
type User struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	Email             string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Password          *string   `gorm:"size:255" json:"-"`
	Name              string    `gorm:"size:100" json:"name"`
	Provider          *string   `gorm:"size:50;index:idx_users_provider_account,unique" json:"provider,omitempty"`
	ProviderAccountID *string   `gorm:"size:255;index:idx_users_provider_account,unique" json:"providerAccountId,omitempty"`
	EmailVerified     bool      `gorm:"default:false" json:"emailVerified"`
	Image             *string   `gorm:"size:500" json:"image,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// Category groups expenses. A user cannot have two categories with the
// same name; other users may reuse the name.
type Category struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null;index:idx_categories_name_user,unique" json:"name"`
	Description *string   `gorm:"size:500" json:"description"`
	Color       *string   `gorm:"size:7" json:"color"`
	UserID      uint      `gorm:"not null;index:idx_categories_name_user,unique" json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Expenses    []Expense `gorm:"foreignKey:CategoryID" json:"-"`
}

// Currency holds a user-defined currency with its USD exchange rate.
type Currency struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Name            string    `gorm:"size:50;not null;index:idx_currencies_name_user,unique" json:"name"`
	USDExchangeRate float64   `gorm:"not null" json:"usdExchangeRate"`
	UserID          uint      `gorm:"not null;index:idx_currencies_name_user,unique" json:"userId"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
	Expenses        []Expense `gorm:"foreignKey:CurrencyID" json:"-"`
}

// Expense references a category and a currency owned by the same user.
type Expense struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Amount      float64   `gorm:"not null" json:"amount"`
	Description *string   `gorm:"size:500" json:"description"`
	Date        time.Time `gorm:"not null;index" json:"date"`
	CategoryID  uint      `gorm:"not null;index" json:"categoryId"`
	CurrencyID  uint      `gorm:"not null;index" json:"currencyId"`
	UserID      uint      `gorm:"not null;index" json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Category    Category  `gorm:"foreignKey:CategoryID" json:"-"`
	Currency    Currency  `gorm:"foreignKey:CurrencyID" json:"-"`
}
