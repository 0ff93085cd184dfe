package store

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"time"

	"pathfinder/internal/quiz"
)

// SaveQuizState upserts the in-progress quiz document for an owner. The
// whole state is rewritten on every answer, so the stored record is always
// a complete snapshot.
func (s *Store) SaveQuizState(owner string, state quiz.SessionState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(
		`INSERT INTO quiz_states (owner, state, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(owner) DO UPDATE SET state = excluded.state, updated_at = excluded.updated_at`,
		owner, string(data), time.Now(),
	)
	return err
}

// LoadQuizState returns the resumable quiz state for an owner, or nil when
// there is none. Malformed JSON, an empty question sequence, or an
// out-of-range index all mean the record is corrupt or stale: it is deleted
// and treated as "no session" rather than surfaced as an error.
func (s *Store) LoadQuizState(owner string) (*quiz.SessionState, error) {
	var raw string
	err := s.db.QueryRow(`SELECT state FROM quiz_states WHERE owner = ?`, owner).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var state quiz.SessionState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		slog.Warn("discarding corrupt quiz state", "owner", owner, "error", err)
		_ = s.DeleteQuizState(owner)
		return nil, nil
	}
	if !state.Valid() {
		slog.Warn("discarding stale quiz state", "owner", owner, "index", state.QuestionIndex, "questions", len(state.Questions))
		_ = s.DeleteQuizState(owner)
		return nil, nil
	}
	return &state, nil
}

// DeleteQuizState removes an owner's saved quiz state.
func (s *Store) DeleteQuizState(owner string) error {
	_, err := s.db.Exec(`DELETE FROM quiz_states WHERE owner = ?`, owner)
	return err
}
