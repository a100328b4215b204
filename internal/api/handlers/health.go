package handlers

import (
	"context"
	"net/http"
	"time"

	"project-tracker-backend/internal/logger"
	"project-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

const (
	componentDatabase = "database"
	stateUp           = "healthy"
	stateDown         = "unavailable"
)

// HealthHandler reports whether the tracker can reach its database
type HealthHandler struct {
	statisticsService service.StatisticsServiceInterface
	startedAt         time.Time
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(statisticsService service.StatisticsServiceInterface) *HealthHandler {
	return &HealthHandler{
		statisticsService: statisticsService,
		startedAt:         time.Now(),
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Uptime    string            `json:"uptime"`
	Services  map[string]string `json:"services"`
}

// ReadyResponse represents the readiness response
type ReadyResponse struct {
	Ready     bool              `json:"ready"`
	Timestamp time.Time         `json:"timestamp"`
	Services  map[string]string `json:"services"`
}

// LiveResponse represents the liveness response
type LiveResponse struct {
	Alive     bool      `json:"alive"`
	Timestamp time.Time `json:"timestamp"`
}

// checkServices pings the database. Failure details go to the log only.
func (h *HealthHandler) checkServices(ctx context.Context) map[string]string {
	if err := h.statisticsService.Ping(ctx); err != nil {
		logger.WithContext(ctx).WithError(err).Warn("database health check failed")
		return map[string]string{componentDatabase: stateDown}
	}
	return map[string]string{componentDatabase: stateUp}
}

func allUp(services map[string]string) bool {
	for _, state := range services {
		if state != stateUp {
			return false
		}
	}
	return true
}

// Health returns the health status of the application
// @Summary Health check
// @Description Get the overall health status of the application including database connectivity
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse "Application is healthy"
// @Failure 503 {object} HealthResponse "Application is unhealthy"
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	services := h.checkServices(c.Request.Context())
	response := HealthResponse{
		Status:    stateUp,
		Timestamp: time.Now(),
		Version:   Version,
		Uptime:    time.Since(h.startedAt).Round(time.Second).String(),
		Services:  services,
	}

	statusCode := http.StatusOK
	if !allUp(services) {
		response.Status = "unhealthy"
		statusCode = http.StatusServiceUnavailable
	}
	c.JSON(statusCode, response)
}

// Ready returns the readiness status of the application
// @Summary Readiness check
// @Description Check if the application is ready to serve requests
// @Tags health
// @Produce json
// @Success 200 {object} ReadyResponse "Application is ready"
// @Failure 503 {object} ReadyResponse "Application is not ready"
// @Router /health/ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	services := h.checkServices(c.Request.Context())
	response := ReadyResponse{Ready: allUp(services), Timestamp: time.Now(), Services: services}

	statusCode := http.StatusOK
	if !response.Ready {
		statusCode = http.StatusServiceUnavailable
	}
	c.JSON(statusCode, response)
}

// Live returns the liveness status of the application
// @Summary Liveness check
// @Description Check if the application is alive and responding
// @Tags health
// @Produce json
// @Success 200 {object} LiveResponse "Application is alive"
// @Router /health/live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, LiveResponse{Alive: true, Timestamp: time.Now()})
}
