package service

import (
	"context"
	"fmt"

	"project-tracker-backend/internal/repository"

	"github.com/google/uuid"
)

// StatisticsService sums up the time recorded in comments
type StatisticsService struct {
	repo        repository.StatisticsRepositoryInterface
	taskRepo    repository.TaskRepositoryInterface
	featureRepo repository.FeatureRepositoryInterface
	userRepo    repository.UserRepositoryInterface
}

// NewStatisticsService creates a new statistics service
func NewStatisticsService(
	repo repository.StatisticsRepositoryInterface,
	taskRepo repository.TaskRepositoryInterface,
	featureRepo repository.FeatureRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
) *StatisticsService {
	return &StatisticsService{
		repo:        repo,
		taskRepo:    taskRepo,
		featureRepo: featureRepo,
		userRepo:    userRepo,
	}
}

// TimeSpentResponse is the total of hours recorded against an entity
type TimeSpentResponse struct {
	ID        uuid.UUID `json:"id"`
	TimeSpent float64   `json:"time_spent"`
}

// TimeSpentByTask sums the hours of the comments on a task
func (s *StatisticsService) TimeSpentByTask(ctx context.Context, taskID string) (*TimeSpentResponse, error) {
	id, err := parseID("task_id", taskID)
	if err != nil {
		return nil, err
	}
	if _, err := s.taskRepo.GetByID(id); err != nil {
		return nil, err
	}
	return s.sum(ctx, id, "task", s.repo.TimeSpentByTask)
}

// TimeSpentByFeature sums the hours of the comments on a feature, comments on its tasks excluded
func (s *StatisticsService) TimeSpentByFeature(ctx context.Context, featureID string) (*TimeSpentResponse, error) {
	id, err := parseID("feature_id", featureID)
	if err != nil {
		return nil, err
	}
	if _, err := s.featureRepo.GetByID(id); err != nil {
		return nil, err
	}
	return s.sum(ctx, id, "feature", s.repo.TimeSpentByFeature)
}

// TimeSpentByUser sums the hours of all comments written by a user
func (s *StatisticsService) TimeSpentByUser(ctx context.Context, userID string) (*TimeSpentResponse, error) {
	id, err := parseID("user_id", userID)
	if err != nil {
		return nil, err
	}
	if _, err := s.userRepo.GetByID(id); err != nil {
		return nil, err
	}
	return s.sum(ctx, id, "user", s.repo.TimeSpentByUser)
}

func (s *StatisticsService) sum(ctx context.Context, id uuid.UUID, entity string, query func(uuid.UUID) (float64, error)) (*TimeSpentResponse, error) {
	total, err := query(id)
	if err != nil {
		logStorage(ctx, err, "failed to sum time spent by "+entity)
		return nil, fmt.Errorf("failed to sum time spent: %w", err)
	}
	return &TimeSpentResponse{ID: id, TimeSpent: total}, nil
}

// Ping reports whether the database answers
func (s *StatisticsService) Ping(ctx context.Context) error {
	if err := s.repo.Ping(); err != nil {
		logStorage(ctx, err, "database ping failed")
		return fmt.Errorf("database unavailable: %w", err)
	}
	return nil
}
