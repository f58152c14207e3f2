package postgres

import (
	"context"
	"database/sql"
	"errors"

	"momentum/internal/domain"
)

// GetByEmail retrieves a user by email.
func (d *DB) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	err := d.sql.QueryRowContext(ctx,
		"SELECT userid, name, email, password_hash, role, status, created_at FROM users WHERE email = $1",
		email,
	).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.Status, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByID retrieves a user by id.
func (d *DB) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	err := d.sql.QueryRowContext(ctx,
		"SELECT userid, name, email, password_hash, role, status, created_at FROM users WHERE userid = $1",
		id,
	).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.Status, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a new user.
func (d *DB) Create(ctx context.Context, name, email, passwordHash, role string) (*domain.User, error) {
	var u domain.User
	err := d.sql.QueryRowContext(ctx,
		`INSERT INTO users (name, email, password_hash, role)
		 VALUES ($1, $2, $3, $4)
		 RETURNING userid, name, email, password_hash, role, status, created_at`,
		name, email, passwordHash, role,
	).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.Status, &u.CreatedAt)
	if err != nil {
		// The service pre-checks the email, but the unique index is what
		// decides under concurrent registration.
		return nil, translateErr(err)
	}
	return &u, nil
}

// UpdateStatus sets a user's status.
func (d *DB) UpdateStatus(ctx context.Context, id int64, status string) error {
	res, err := d.sql.ExecContext(ctx, "UPDATE users SET status = $1 WHERE userid = $2", status, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// UpdateRole sets a user's role.
func (d *DB) UpdateRole(ctx context.Context, id int64, role string) error {
	res, err := d.sql.ExecContext(ctx, "UPDATE users SET role = $1 WHERE userid = $2", role, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Upsert creates or replaces a user's profile.
func (d *DB) Upsert(ctx context.Context, p *domain.Profile) (*domain.Profile, error) {
	var out domain.Profile
	err := d.sql.QueryRowContext(ctx,
		`INSERT INTO user_profiles (user_id, image_url, gender, date_of_birth, current_weight, current_height, goal, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, now())
		 ON CONFLICT (user_id) DO UPDATE SET
		     image_url = EXCLUDED.image_url,
		     gender = EXCLUDED.gender,
		     date_of_birth = EXCLUDED.date_of_birth,
		     current_weight = EXCLUDED.current_weight,
		     current_height = EXCLUDED.current_height,
		     goal = EXCLUDED.goal,
		     updated_at = now()
		 RETURNING user_id, COALESCE(image_url, ''), gender, to_char(date_of_birth, 'YYYY-MM-DD'), current_weight, current_height, goal, updated_at`,
		p.UserID, nullIfEmpty(p.ImageURL), p.Gender, p.DateOfBirth, p.Weight, p.Height, p.Goal,
	).Scan(&out.UserID, &out.ImageURL, &out.Gender, &out.DateOfBirth, &out.Weight, &out.Height, &out.Goal, &out.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetByUserID retrieves a user's profile.
func (d *DB) GetByUserID(ctx context.Context, userID int64) (*domain.Profile, error) {
	var p domain.Profile
	err := d.sql.QueryRowContext(ctx,
		`SELECT user_id, COALESCE(image_url, ''), gender, to_char(date_of_birth, 'YYYY-MM-DD'), current_weight, current_height, goal, updated_at
		 FROM user_profiles WHERE user_id = $1`,
		userID,
	).Scan(&p.UserID, &p.ImageURL, &p.Gender, &p.DateOfBirth, &p.Weight, &p.Height, &p.Goal, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
