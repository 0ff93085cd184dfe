package store

import (
	"encoding/json"
	"fmt"
	"time"

	"pathfinder/internal/model"
)

// SaveResult stores a completed analysis on a user's account.
func (s *Store) SaveResult(userID int64, archetype string, analysis model.FullAnalysis) (int64, error) {
	data, err := json.Marshal(analysis)
	if err != nil {
		return 0, fmt.Errorf("marshal analysis: %w", err)
	}
	res, err := s.db.Exec(
		`INSERT INTO results (user_id, date, archetype, analysis) VALUES (?, ?, ?, ?)`,
		userID, time.Now(), archetype, string(data),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListResults returns a user's saved results, newest first.
func (s *Store) ListResults(userID int64) ([]model.Result, error) {
	rows, err := s.db.Query(
		`SELECT id, user_id, date, archetype, analysis FROM results WHERE user_id = ? ORDER BY date DESC, id DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []model.Result
	for rows.Next() {
		var r model.Result
		var raw string
		if err := rows.Scan(&r.ID, &r.UserID, &r.Date, &r.Archetype, &raw); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(raw), &r.Analysis); err != nil {
			return nil, fmt.Errorf("unmarshal analysis %d: %w", r.ID, err)
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

// ResultCount returns the number of saved results.
func (s *Store) ResultCount() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM results`).Scan(&count)
	return count, err
}
