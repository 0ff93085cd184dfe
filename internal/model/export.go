package model

import "time"

// ResultExport is the top-level JSON structure for result export.
type ResultExport struct {
	ExportedAt time.Time      `json:"exported_at"`
	NumUsers   int            `json:"num_users"`
	NumResults int            `json:"num_results"`
	Events     map[string]int `json:"events,omitempty"`
	Results    []UserResults  `json:"results"`
}

// UserResults holds one account's saved assessment outcomes.
type UserResults struct {
	Email      string   `json:"email"`
	Name       string   `json:"name"`
	Tier       string   `json:"tier,omitempty"`
	TestsTaken int      `json:"tests_taken"`
	Results    []Result `json:"results"`
}
