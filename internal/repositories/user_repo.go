package repositories

import (
	"context"
	"database/sql"
	"time"

	"founditBack/internal/models"
)

type UserRepository struct {
	DB *sql.DB
}

func (r *UserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	query := `
		INSERT INTO users (name, surname, email, phone, password, role, street, city, state, country, postal_code, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())
	`
	result, err := r.DB.ExecContext(ctx, query,
		user.Name, user.Surname, user.Email, user.Phone, user.Password, user.Role,
		user.Address.Street, user.Address.City, user.Address.State, user.Address.Country, user.Address.PostalCode,
	)
	if err != nil {
		return models.User{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return models.User{}, err
	}
	user.ID = models.EntityID(id)
	return user, nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id models.EntityID) (models.User, error) {
	query := `
		SELECT id, name, surname, email, phone, password, role, street, city, state, country, postal_code, created_at, updated_at
		FROM users
		WHERE id = ?
	`
	var user models.User
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&user.ID, &user.Name, &user.Surname, &user.Email, &user.Phone, &user.Password, &user.Role,
		&user.Address.Street, &user.Address.City, &user.Address.State, &user.Address.Country, &user.Address.PostalCode,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return models.User{}, models.ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

// GetUserByEmail returns a zero-value user when no row matches, so callers
// can distinguish "free email" from a store failure.
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	query := `
		SELECT id, name, surname, email, phone, password, role, created_at
		FROM users
		WHERE email = ?
	`
	var user models.User
	err := r.DB.QueryRowContext(ctx, query, email).Scan(
		&user.ID, &user.Name, &user.Surname, &user.Email, &user.Phone, &user.Password, &user.Role, &user.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return models.User{}, nil
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (r *UserRepository) GetUsers(ctx context.Context) ([]models.User, error) {
	query := `
		SELECT id, name, surname, email, phone, role, street, city, state, country, postal_code, created_at, updated_at
		FROM users
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var user models.User
		if err := rows.Scan(
			&user.ID, &user.Name, &user.Surname, &user.Email, &user.Phone, &user.Role,
			&user.Address.Street, &user.Address.City, &user.Address.State, &user.Address.Country, &user.Address.PostalCode,
			&user.CreatedAt, &user.UpdatedAt,
		); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (r *UserRepository) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	query := `
		UPDATE users
		SET name = ?, surname = ?, phone = ?, street = ?, city = ?, state = ?, country = ?, postal_code = ?, updated_at = NOW()
		WHERE id = ?
	`
	result, err := r.DB.ExecContext(ctx, query,
		user.Name, user.Surname, user.Phone,
		user.Address.Street, user.Address.City, user.Address.State, user.Address.Country, user.Address.PostalCode,
		user.ID,
	)
	if err != nil {
		return models.User{}, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return models.User{}, err
	}
	if rowsAffected == 0 {
		return models.User{}, models.ErrUserNotFound
	}
	return r.GetUserByID(ctx, user.ID)
}

func (r *UserRepository) SetSession(ctx context.Context, userID models.EntityID, session models.Session) error {
	query := `UPDATE users SET refresh_token = ?, expires_at = ? WHERE id = ?`
	result, err := r.DB.ExecContext(ctx, query, session.RefreshToken, session.ExpiresAt, userID)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) GetSessionByToken(ctx context.Context, refreshToken string) (models.Session, error) {
	query := `
		SELECT id, role, refresh_token, expires_at
		FROM users
		WHERE refresh_token = ?
	`
	var session models.Session
	var expiresAt sql.NullTime
	err := r.DB.QueryRowContext(ctx, query, refreshToken).Scan(&session.UserID, &session.Role, &session.RefreshToken, &expiresAt)
	if err == sql.ErrNoRows {
		return models.Session{}, nil
	}
	if err != nil {
		return models.Session{}, err
	}
	if expiresAt.Valid {
		session.ExpiresAt = expiresAt.Time
	} else {
		session.ExpiresAt = time.Time{}
	}
	return session, nil
}

func (r *UserRepository) UserLogOut(ctx context.Context, userID models.EntityID) error {
	query := `UPDATE users SET refresh_token = '' WHERE id = ?`
	_, err := r.DB.ExecContext(ctx, query, userID)
	return err
}

// PurgeExpiredSessions clears refresh tokens whose expiry has passed and
// returns how many were cleared.
func (r *UserRepository) PurgeExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	query := `UPDATE users SET refresh_token = '' WHERE refresh_token <> '' AND expires_at < ?`
	result, err := r.DB.ExecContext(ctx, query, now)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
