package models

import (
	"time"

	"github.com/google/uuid"
)

// Meal is a named dish in a user's library.
type Meal struct {
	ID          uint             `gorm:"primarykey" json:"id"`
	UserID      uuid.UUID        `gorm:"type:varchar(36);not null;index" json:"user_id"`
	Name        string           `gorm:"size:256;not null" json:"name"`
	Description string           `gorm:"type:text" json:"description"`
	ImageURL    string           `gorm:"size:255" json:"image_url"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
	Ingredients []MealIngredient `gorm:"foreignKey:MealID;constraint:OnDelete:CASCADE" json:"ingredients"`
}

// Ingredient is an entry of the catalog shared by all users. Names are unique
// and compared exactly; rows are only ever inserted.
type Ingredient struct {
	ID   uint   `gorm:"primarykey" json:"id"`
	Name string `gorm:"size:256;not null;uniqueIndex" json:"name"`
}

// MealIngredient links a meal to an ingredient with a free-text quantity.
type MealIngredient struct {
	MealID       uint        `gorm:"primaryKey;autoIncrement:false" json:"meal_id"`
	IngredientID uint        `gorm:"primaryKey;autoIncrement:false" json:"ingredient_id"`
	Quantity     *string     `gorm:"size:256" json:"quantity"`
	Position     int         `gorm:"not null;default:0" json:"-"`
	Ingredient   *Ingredient `gorm:"foreignKey:IngredientID;constraint:OnDelete:CASCADE" json:"ingredient,omitempty"`
}
