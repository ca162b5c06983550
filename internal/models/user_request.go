package models

// UpdateProfileRequest is the patch payload for PUT /api/users/profile.
// Every field is optional; nil fields are left untouched on the row.
type UpdateProfileRequest struct {
	Name     *string `json:"name" binding:"omitempty,max=100"`
	Email    *string `json:"email" binding:"omitempty,email,max=255"`
	Bio      *string `json:"bio"`
	Location *string `json:"location" binding:"omitempty,max=100"`
	Website  *string `json:"website" binding:"omitempty,max=255"`
	Avatar   *string `json:"avatar"`
}
