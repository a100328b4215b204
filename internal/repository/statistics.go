package repository

import (
	"project-tracker-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StatisticsRepository runs aggregate queries over comments
type StatisticsRepository struct {
	db *gorm.DB
}

// NewStatisticsRepository creates a new statistics repository
func NewStatisticsRepository(db *gorm.DB) *StatisticsRepository {
	return &StatisticsRepository{db: db}
}

// TimeSpentByTask sums the time spent recorded on a task
func (r *StatisticsRepository) TimeSpentByTask(taskID uuid.UUID) (float64, error) {
	return r.sum("task_id = ?", taskID, "while getting the statistics for task")
}

// TimeSpentByFeature sums the time spent recorded directly on a feature
func (r *StatisticsRepository) TimeSpentByFeature(featureID uuid.UUID) (float64, error) {
	return r.sum("feature_id = ?", featureID, "while getting the statistics for feature")
}

// TimeSpentByUser sums the time spent recorded by a user
func (r *StatisticsRepository) TimeSpentByUser(userID uuid.UUID) (float64, error) {
	return r.sum("assignee_id = ?", userID, "while getting the statistics for user")
}

func (r *StatisticsRepository) sum(condition string, id uuid.UUID, op string) (float64, error) {
	var total float64
	err := r.db.Model(&models.Comment{}).
		Select("COALESCE(SUM(time_spent), 0)").
		Where(condition, id).
		Scan(&total).Error
	if err != nil {
		return 0, translate(err, nil, op)
	}
	return total, nil
}

// Ping tells whether the database can be reached
func (r *StatisticsRepository) Ping() error {
	return translate(r.db.Exec("SELECT 1").Error, nil, "while checking database health")
}
