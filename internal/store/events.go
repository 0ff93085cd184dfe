package store

import "time"

// RecordEvent appends one analytics event. Owner is the quiz owner key or
// empty for unattributed events. Failures are the caller's to ignore:
// analytics must never break the request path.
func (s *Store) RecordEvent(name, owner string) error {
	_, err := s.db.Exec(
		`INSERT INTO events (name, owner, created_at) VALUES (?, ?, ?)`,
		name, owner, time.Now(),
	)
	return err
}

// EventCounts returns total occurrences per event name.
func (s *Store) EventCounts() (map[string]int, error) {
	rows, err := s.db.Query(`SELECT name, COUNT(*) FROM events GROUP BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var name string
		var n int
		if err := rows.Scan(&name, &n); err != nil {
			return nil, err
		}
		counts[name] = n
	}
	return counts, rows.Err()
}
