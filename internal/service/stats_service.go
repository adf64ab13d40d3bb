package service

import (
	"context"

	"sarita-industries/internal/config"
	"sarita-industries/internal/domain"
)

// StatsService reports the company figures
type StatsService interface {
	GetStats(ctx context.Context) domain.Stats
}

type statsService struct {
	figures config.StatsConfig
}

func NewStatsService(figures config.StatsConfig) StatsService {
	return &statsService{figures: figures}
}

// GetStats returns the configured figures, clamping negatives to zero
func (s *statsService) GetStats(ctx context.Context) domain.Stats {
	return domain.Stats{
		HappyClients:      max(s.figures.HappyClients, 0),
		YearsExperience:   max(s.figures.YearsExperience, 0),
		ProjectsCompleted: max(s.figures.ProjectsCompleted, 0),
		OnTimeDelivery:    max(s.figures.OnTimeDelivery, 0),
	}
}
