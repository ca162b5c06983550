package models

// CreateSkillRequest represents the request body for creating a skill
type CreateSkillRequest struct {
	Name     string  `json:"name" binding:"required,max=100"`
	Level    int     `json:"level" binding:"required,min=1,max=100"`
	Category *string `json:"category" binding:"omitempty,max=50"`
}

// UpdateSkillRequest is the patch payload for PUT /api/skills/:id.
// Nil fields are left untouched on the row.
type UpdateSkillRequest struct {
	Name     *string `json:"name" binding:"omitempty,max=100"`
	Level    *int    `json:"level" binding:"omitempty,min=1,max=100"`
	Category *string `json:"category" binding:"omitempty,max=50"`
}
