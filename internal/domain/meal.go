package domain

import (
	"context"
	"time"
)

// Meal types accepted by the meal log.
var MealTypes = []string{"Breakfast", "Lunch", "Dinner", "Snack"}

// Meal is one logged meal belonging to a user.
type Meal struct {
	ID        int64     `json:"meal_id"`
	UserID    int64     `json:"user_id"`
	Name      string    `json:"name"`
	Calories  float64   `json:"calories"`
	Protein   float64   `json:"protein"`
	Carbs     float64   `json:"carbs"`
	Fat       float64   `json:"fat"`
	MealType  string    `json:"meal_type"`
	CreatedAt time.Time `json:"created_at"`
}

// MealRepository defines the port for meal persistence. Every operation is
// scoped by user id: ownership is the only invariant.
type MealRepository interface {
	Create(ctx context.Context, m *Meal) (*Meal, error)
	ListByUser(ctx context.Context, userID int64) ([]Meal, error)
	Update(ctx context.Context, m *Meal) (*Meal, error)
	Delete(ctx context.Context, userID, mealID int64) (bool, error)
}
