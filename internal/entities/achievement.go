package entities

import "time"

// Achievement represents an achievement row.
// Date is the user-assigned milestone date, distinct from CreatedAt.
type Achievement struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Icon        *string   `json:"icon"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"createdAt"`
}
