package service

import (
	"context"

	"folio-be/internal/metrics"
	"folio-be/internal/models"
	"folio-be/internal/repository"
)

// DashboardService aggregates per-user stats for the dashboard view
type DashboardService interface {
	Stats(ctx context.Context, userID int64) (*models.DashboardStatsResponse, error)
}

type dashboardService struct {
	projectRepo     repository.ProjectRepository
	skillRepo       repository.SkillRepository
	achievementRepo repository.AchievementRepository
	metrics         metrics.Provider
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	projectRepo repository.ProjectRepository,
	skillRepo repository.SkillRepository,
	achievementRepo repository.AchievementRepository,
	metricsProvider metrics.Provider,
) DashboardService {
	return &dashboardService{
		projectRepo:     projectRepo,
		skillRepo:       skillRepo,
		achievementRepo: achievementRepo,
		metrics:         metricsProvider,
	}
}

// Stats combines entity counts with externally-provided engagement metrics
func (s *dashboardService) Stats(ctx context.Context, userID int64) (*models.DashboardStatsResponse, error) {
	projects, err := s.projectRepo.CountByUserID(userID)
	if err != nil {
		return nil, err
	}

	skills, err := s.skillRepo.CountByUserID(userID)
	if err != nil {
		return nil, err
	}

	achievements, err := s.achievementRepo.CountByUserID(userID)
	if err != nil {
		return nil, err
	}

	engagement, err := s.metrics.GetMetrics(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &models.DashboardStatsResponse{
		Projects:     projects,
		Skills:       skills,
		Achievements: achievements,
		Views:        engagement.Views,
		Stars:        engagement.Stars,
	}, nil
}
