package metrics

import "context"

// EngagementMetrics holds externally-sourced engagement numbers for a user
type EngagementMetrics struct {
	Views int
	Stars int
}

// Provider supplies engagement metrics for the dashboard. The core only owns
// the aggregation point; a real deployment would back this with an analytics
// service and the GitHub API.
type Provider interface {
	GetMetrics(ctx context.Context, userID int64) (*EngagementMetrics, error)
}

type staticProvider struct{}

// NewStaticProvider returns a provider that reports zero views and stars.
// Used until an external analytics/VCS integration is plugged in.
func NewStaticProvider() Provider {
	return &staticProvider{}
}

func (p *staticProvider) GetMetrics(_ context.Context, _ int64) (*EngagementMetrics, error) {
	return &EngagementMetrics{Views: 0, Stars: 0}, nil
}
