package handlers

import (
	"context"
	"net/http"

	"project-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// StatisticsHandler serves time spent totals
type StatisticsHandler struct {
	statisticsService service.StatisticsServiceInterface
}

// NewStatisticsHandler creates a new statistics handler
func NewStatisticsHandler(statisticsService service.StatisticsServiceInterface) *StatisticsHandler {
	return &StatisticsHandler{statisticsService: statisticsService}
}

// TaskTimeSpent handles GET /statistics/tasks/:id
// @Summary Time spent on a task
// @Tags statistics
// @Produce json
// @Param id path string true "Task ID (UUID)"
// @Success 200 {object} service.TimeSpentResponse
// @Failure 400 {object} ErrorResponse "Invalid task ID"
// @Failure 404 {object} ErrorResponse "Task not found"
// @Security BearerAuth
// @Router /statistics/tasks/{id} [get]
func (h *StatisticsHandler) TaskTimeSpent(c *gin.Context) {
	h.respond(c, h.statisticsService.TimeSpentByTask)
}

// FeatureTimeSpent handles GET /statistics/features/:id
// @Summary Time spent on a feature
// @Tags statistics
// @Produce json
// @Param id path string true "Feature ID (UUID)"
// @Success 200 {object} service.TimeSpentResponse
// @Failure 400 {object} ErrorResponse "Invalid feature ID"
// @Failure 404 {object} ErrorResponse "Feature not found"
// @Security BearerAuth
// @Router /statistics/features/{id} [get]
func (h *StatisticsHandler) FeatureTimeSpent(c *gin.Context) {
	h.respond(c, h.statisticsService.TimeSpentByFeature)
}

// UserTimeSpent handles GET /statistics/users/:id
// @Summary Time spent by a user
// @Tags statistics
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Success 200 {object} service.TimeSpentResponse
// @Failure 400 {object} ErrorResponse "Invalid user ID"
// @Failure 404 {object} ErrorResponse "User not found"
// @Security BearerAuth
// @Router /statistics/users/{id} [get]
func (h *StatisticsHandler) UserTimeSpent(c *gin.Context) {
	h.respond(c, h.statisticsService.TimeSpentByUser)
}

func (h *StatisticsHandler) respond(c *gin.Context, sum func(ctx context.Context, id string) (*service.TimeSpentResponse, error)) {
	total, err := sum(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, total)
}
