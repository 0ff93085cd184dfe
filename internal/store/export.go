package store

import (
	"fmt"
	"time"

	"pathfinder/internal/model"
)

// ExportAll builds the export document: every account with its saved
// results, plus the analytics event tallies.
func (s *Store) ExportAll() (model.ResultExport, error) {
	var export model.ResultExport

	users, err := s.ListUsers()
	if err != nil {
		return export, fmt.Errorf("list users: %w", err)
	}

	totalResults := 0
	for _, u := range users {
		results, err := s.ListResults(u.ID)
		if err != nil {
			return export, fmt.Errorf("list results for user %d: %w", u.ID, err)
		}
		totalResults += len(results)
		export.Results = append(export.Results, model.UserResults{
			Email:      u.Email,
			Name:       u.Name,
			Tier:       u.Tier,
			TestsTaken: u.TestsTaken,
			Results:    results,
		})
	}

	events, err := s.EventCounts()
	if err != nil {
		return export, fmt.Errorf("event counts: %w", err)
	}

	export.ExportedAt = time.Now()
	export.NumUsers = len(users)
	export.NumResults = totalResults
	export.Events = events
	return export, nil
}
