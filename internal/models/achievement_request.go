package models

import "time"

// CreateAchievementRequest represents the request body for creating an achievement.
// Date is the user-assigned milestone date; it defaults to now when omitted.
type CreateAchievementRequest struct {
	Title       string     `json:"title" binding:"required,max=200"`
	Description *string    `json:"description"`
	Icon        *string    `json:"icon" binding:"omitempty,max=50"`
	Date        *time.Time `json:"date"`
}

// UpdateAchievementRequest is the patch payload for PUT /api/achievements/:id.
// Nil fields are left untouched on the row.
type UpdateAchievementRequest struct {
	Title       *string    `json:"title" binding:"omitempty,max=200"`
	Description *string    `json:"description"`
	Icon        *string    `json:"icon" binding:"omitempty,max=50"`
	Date        *time.Time `json:"date"`
}
