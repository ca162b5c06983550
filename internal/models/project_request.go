package models

// CreateProjectRequest represents the request body for creating a project
type CreateProjectRequest struct {
	Title        string   `json:"title" binding:"required,max=200"`
	Description  *string  `json:"description"`
	Category     *string  `json:"category" binding:"omitempty,max=50"`
	Technologies []string `json:"technologies"`
	ImageURL     *string  `json:"imageUrl"`
	ProjectURL   *string  `json:"projectUrl"`
	GithubURL    *string  `json:"githubUrl"`
	Featured     *bool    `json:"featured"`
}

// UpdateProjectRequest is the patch payload for PUT /api/projects/:id.
// Nil fields are left untouched on the row.
type UpdateProjectRequest struct {
	Title        *string   `json:"title" binding:"omitempty,max=200"`
	Description  *string   `json:"description"`
	Category     *string   `json:"category" binding:"omitempty,max=50"`
	Technologies *[]string `json:"technologies"`
	ImageURL     *string   `json:"imageUrl"`
	ProjectURL   *string   `json:"projectUrl"`
	GithubURL    *string   `json:"githubUrl"`
	Featured     *bool     `json:"featured"`
}
