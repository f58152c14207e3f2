package app

import (
	"context"
	"strings"

	"momentum/internal/domain"
)

// MealService encapsulates per-user meal logging.
type MealService struct {
	meals domain.MealRepository
}

// NewMealService creates a MealService backed by the given repository.
func NewMealService(meals domain.MealRepository) *MealService {
	return &MealService{meals: meals}
}

func validateMeal(m *domain.Meal) error {
	var fields []FieldError
	if strings.TrimSpace(m.Name) == "" {
		fields = append(fields, FieldError{Field: "name", Message: "Meal name is required"})
	}
	if m.Calories < 0 {
		fields = append(fields, FieldError{Field: "calories", Message: "Calories must be a non-negative number"})
	}
	if m.Protein < 0 || m.Carbs < 0 || m.Fat < 0 {
		fields = append(fields, FieldError{Field: "macros", Message: "Macros must be non-negative numbers"})
	}
	if !validMealType(m.MealType) {
		fields = append(fields, FieldError{Field: "meal_type", Message: "Meal type must be one of: " + strings.Join(domain.MealTypes, ", ")})
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// CreateMeal validates and stores a new meal for the user.
func (s *MealService) CreateMeal(ctx context.Context, m *domain.Meal) (*domain.Meal, error) {
	if err := validateMeal(m); err != nil {
		return nil, err
	}
	return s.meals.Create(ctx, m)
}

// ListMeals returns all of the user's meals.
func (s *MealService) ListMeals(ctx context.Context, userID int64) ([]domain.Meal, error) {
	return s.meals.ListByUser(ctx, userID)
}

// UpdateMeal validates and replaces one of the user's meals.
func (s *MealService) UpdateMeal(ctx context.Context, m *domain.Meal) (*domain.Meal, error) {
	if err := validateMeal(m); err != nil {
		return nil, err
	}
	updated, err := s.meals.Update(ctx, m)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrNotFound
	}
	return updated, nil
}

// DeleteMeal removes one of the user's meals.
func (s *MealService) DeleteMeal(ctx context.Context, userID, mealID int64) error {
	deleted, err := s.meals.Delete(ctx, userID, mealID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

func validMealType(t string) bool {
	for _, mt := range domain.MealTypes {
		if mt == t {
			return true
		}
	}
	return false
}
