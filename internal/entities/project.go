package entities

import "time"

// Project represents a portfolio project row.
// Technologies is stored as a JSON array of strings in a TEXT column;
// the repository is the only place that encodes/decodes it.
type Project struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"userId"`
	Title        string    `json:"title"`
	Description  *string   `json:"description"`
	Category     *string   `json:"category"`
	Technologies []string  `json:"technologies"`
	ImageURL     *string   `json:"imageUrl"`
	ProjectURL   *string   `json:"projectUrl"`
	GithubURL    *string   `json:"githubUrl"`
	Featured     bool      `json:"featured"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
