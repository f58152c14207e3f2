package postgres

import (
	"context"
	"database/sql"
	"errors"

	"momentum/internal/domain"
)

// MealRepo implements domain.MealRepository on Postgres.
type MealRepo struct {
	db *DB
}

func NewMealRepo(db *DB) *MealRepo {
	return &MealRepo{db: db}
}

const mealCols = "meal_id, user_id, name, calories, protein, carbs, fat, meal_type, created_at"

func scanMeal(row interface{ Scan(...any) error }) (*domain.Meal, error) {
	var m domain.Meal
	err := row.Scan(&m.ID, &m.UserID, &m.Name, &m.Calories, &m.Protein, &m.Carbs, &m.Fat, &m.MealType, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MealRepo) Create(ctx context.Context, m *domain.Meal) (*domain.Meal, error) {
	return scanMeal(r.db.sql.QueryRowContext(ctx,
		`INSERT INTO meals (user_id, name, calories, protein, carbs, fat, meal_type)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+mealCols,
		m.UserID, m.Name, m.Calories, m.Protein, m.Carbs, m.Fat, m.MealType,
	))
}

func (r *MealRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Meal, error) {
	rows, err := r.db.sql.QueryContext(ctx,
		"SELECT "+mealCols+" FROM meals WHERE user_id = $1 ORDER BY created_at DESC", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Meal
	for rows.Next() {
		m, err := scanMeal(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *m)
	}
	return out, rows.Err()
}

func (r *MealRepo) Update(ctx context.Context, m *domain.Meal) (*domain.Meal, error) {
	updated, err := scanMeal(r.db.sql.QueryRowContext(ctx,
		`UPDATE meals
		 SET name = $1, calories = $2, protein = $3, carbs = $4, fat = $5, meal_type = $6
		 WHERE meal_id = $7 AND user_id = $8
		 RETURNING `+mealCols,
		m.Name, m.Calories, m.Protein, m.Carbs, m.Fat, m.MealType, m.ID, m.UserID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return updated, err
}

func (r *MealRepo) Delete(ctx context.Context, userID, mealID int64) (bool, error) {
	res, err := r.db.sql.ExecContext(ctx,
		"DELETE FROM meals WHERE meal_id = $1 AND user_id = $2", mealID, userID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
