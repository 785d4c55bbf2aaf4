package types

import (
	"github.com/pageza/mealprep/backend/internal/models"
)

// RegisterRequest represents the request body for creating an account
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,max=255"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

// LoginRequest represents the request body for logging in
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// IngredientInput is one row of the meal form.
type IngredientInput struct {
	Name     string `json:"name" binding:"required,max=256"`
	Quantity string `json:"quantity" binding:"required,max=256"`
}

// MealRequest is the body of meal create and update. Updates replace the
// whole ingredient list.
type MealRequest struct {
	Name        string            `json:"name" binding:"required,max=256"`
	Description string            `json:"description"`
	Ingredients []IngredientInput `json:"ingredients" binding:"required,min=1,dive"`
}

// CreatePlanRequest schedules a meal on a calendar day.
type CreatePlanRequest struct {
	MealID      uint   `json:"meal_id" binding:"required"`
	PlannedDate string `json:"planned_date" binding:"required,calendarday"`
}
