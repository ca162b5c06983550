package models

// DashboardStatsResponse aggregates per-user counts plus engagement metrics
// for GET /api/dashboard/stats
type DashboardStatsResponse struct {
	Projects     int `json:"projects"`
	Skills       int `json:"skills"`
	Achievements int `json:"achievements"`
	Views        int `json:"views"`
	Stars        int `json:"stars"`
}
