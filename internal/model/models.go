// internal/model/models.go
package model

import "time"

// User is a snapshot of a GitHub user profile as returned by the public API.
// Optional fields decode to their zero value; the analysis pipeline treats
// an empty string as "not set".
type User struct {
	Login       string    `json:"login"`
	Name        string    `json:"name,omitempty"`
	Bio         string    `json:"bio,omitempty"`
	Company     string    `json:"company,omitempty"`
	Location    string    `json:"location,omitempty"`
	Blog        string    `json:"blog,omitempty"`
	Followers   int       `json:"followers"`
	Following   int       `json:"following"`
	PublicRepos int       `json:"public_repos"`
	PublicGists int       `json:"public_gists"`
	Hireable    bool      `json:"hireable"`
	CreatedAt   time.Time `json:"created_at"`
}

// Repository is the subset of GitHub repository metadata the analyzer
// consumes. Unknown API fields are ignored on decode.
type Repository struct {
	Name        string    `json:"name"`
	Language    string    `json:"language,omitempty"`
	Stars       int       `json:"stargazers_count"`
	Forks       int       `json:"forks_count"`
	Watchers    int       `json:"watchers_count"`
	OpenIssues  int       `json:"open_issues_count"`
	Size        int       `json:"size"`
	Description string    `json:"description,omitempty"`
	Fork        bool      `json:"fork"`
	Topics      []string  `json:"topics,omitempty"`
	URL         string    `json:"html_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Event is a single entry from a user's public event timeline. Only the
// kind and timestamp matter for aggregation; chronology is re-derived from
// the timestamps, so collection order is irrelevant.
type Event struct {
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}
