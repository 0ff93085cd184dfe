package store

import (
	"database/sql"
	"log/slog"
	"time"

	"pathfinder/internal/model"
)

// CreateUser inserts a new user.
func (s *Store) CreateUser(u model.User) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO users (email, name, password_hash, tier, tier_status, tests_taken, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		u.Email, u.Name, u.PasswordHash, u.Tier, u.TierStatus, u.TestsTaken, time.Now(),
	)
	if err != nil {
		slog.Error("failed to create user", "email", u.Email, "error", err)
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	slog.Info("created user", "id", id, "email", u.Email)
	return id, nil
}

// GetUserByEmail returns a user by email (case-insensitive).
func (s *Store) GetUserByEmail(email string) (*model.User, error) {
	var u model.User
	err := s.db.QueryRow(
		`SELECT id, email, name, password_hash, tier, tier_status, tests_taken, created_at
		 FROM users WHERE email = ?`, email,
	).Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.Tier, &u.TierStatus, &u.TestsTaken, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetUserByID returns a user by ID.
func (s *Store) GetUserByID(id int64) (*model.User, error) {
	var u model.User
	err := s.db.QueryRow(
		`SELECT id, email, name, password_hash, tier, tier_status, tests_taken, created_at
		 FROM users WHERE id = ?`, id,
	).Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.Tier, &u.TierStatus, &u.TestsTaken, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// ListUsers returns all users.
func (s *Store) ListUsers() ([]model.User, error) {
	rows, err := s.db.Query(
		`SELECT id, email, name, password_hash, tier, tier_status, tests_taken, created_at
		 FROM users ORDER BY id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var users []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.Tier, &u.TierStatus, &u.TestsTaken, &u.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// UserCount returns the number of users.
func (s *Store) UserCount() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&count)
	return count, err
}

// IncrementTestCount bumps a user's completed-test counter.
func (s *Store) IncrementTestCount(userID int64) error {
	_, err := s.db.Exec(`UPDATE users SET tests_taken = tests_taken + 1 WHERE id = ?`, userID)
	return err
}

// UpdateSubscription sets a user's tier and status.
func (s *Store) UpdateSubscription(userID int64, tier, status string) error {
	_, err := s.db.Exec(`UPDATE users SET tier = ?, tier_status = ? WHERE id = ?`, tier, status, userID)
	if err != nil {
		return err
	}
	slog.Info("updated subscription", "user_id", userID, "tier", tier, "status", status)
	return nil
}
