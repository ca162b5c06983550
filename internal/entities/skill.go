package entities

import "time"

// Skill represents a skill row. Level is a proficiency from 1 to 100.
// Skills have no updated_at column.
type Skill struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Name      string    `json:"name"`
	Level     int       `json:"level"`
	Category  *string   `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
}
