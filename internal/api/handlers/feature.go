package handlers

import (
	"net/http"

	"project-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// FeatureHandler handles HTTP requests for feature operations
type FeatureHandler struct {
	featureService service.FeatureServiceInterface
}

// NewFeatureHandler creates a new feature handler
func NewFeatureHandler(featureService service.FeatureServiceInterface) *FeatureHandler {
	return &FeatureHandler{featureService: featureService}
}

// CreateFeature handles POST /features
// @Summary Create a new feature
// @Tags features
// @Accept json
// @Produce json
// @Param feature body service.FeatureRequest true "Feature data"
// @Success 201 {object} service.FeatureResponse
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Not enough permissions"
// @Failure 404 {object} ErrorResponse "Project, owner, status or type not found"
// @Security BearerAuth
// @Router /features [post]
func (h *FeatureHandler) CreateFeature(c *gin.Context) {
	var req service.FeatureRequest
	if !bindJSON(c, &req) {
		return
	}

	feature, err := h.featureService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, feature)
}

// GetFeature handles GET /features/:id
// @Summary Get feature by ID
// @Tags features
// @Produce json
// @Param id path string true "Feature ID (UUID)"
// @Success 200 {object} service.FeatureResponse
// @Failure 400 {object} ErrorResponse "Invalid feature ID"
// @Failure 404 {object} ErrorResponse "Feature not found"
// @Security BearerAuth
// @Router /features/{id} [get]
func (h *FeatureHandler) GetFeature(c *gin.Context) {
	feature, err := h.featureService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, feature)
}

// GetFeatureName handles GET /features/:id/name
// @Summary Get feature name
// @Tags features
// @Produce json
// @Param id path string true "Feature ID (UUID)"
// @Success 200 {object} map[string]string
// @Failure 404 {object} ErrorResponse "Feature not found"
// @Security BearerAuth
// @Router /features/{id}/name [get]
func (h *FeatureHandler) GetFeatureName(c *gin.Context) {
	name, err := h.featureService.GetName(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"name": name})
}

// ListFeatures handles GET /features
// @Summary List features
// @Description List all features, filtered by project or owner when given
// @Tags features
// @Produce json
// @Param project_id query string false "Project ID (UUID)"
// @Param owner_id query string false "Owner ID (UUID)"
// @Success 200 {array} service.FeatureResponse
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Failure 404 {object} ErrorResponse "Project or owner not found"
// @Security BearerAuth
// @Router /features [get]
func (h *FeatureHandler) ListFeatures(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		features []service.FeatureResponse
		err      error
	)
	if projectID, ok := c.GetQuery("project_id"); ok {
		features, err = h.featureService.GetAllByProject(ctx, projectID)
	} else if ownerID, ok := c.GetQuery("owner_id"); ok {
		features, err = h.featureService.GetAllByOwner(ctx, ownerID)
	} else {
		features, err = h.featureService.GetAll(ctx)
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, features)
}

// UpdateFeature handles PUT /features/:id
// @Summary Update feature
// @Tags features
// @Accept json
// @Produce json
// @Param id path string true "Feature ID (UUID)"
// @Param feature body service.FeatureRequest true "Updated feature data"
// @Success 200 {object} service.FeatureResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Not enough permissions"
// @Failure 404 {object} ErrorResponse "Feature not found"
// @Security BearerAuth
// @Router /features/{id} [put]
func (h *FeatureHandler) UpdateFeature(c *gin.Context) {
	var req service.FeatureRequest
	if !bindJSON(c, &req) {
		return
	}

	feature, err := h.featureService.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, feature)
}

// DeleteFeature handles DELETE /features/:id
// @Summary Delete feature
// @Tags features
// @Param id path string true "Feature ID (UUID)"
// @Success 204
// @Failure 403 {object} ErrorResponse "Not enough permissions"
// @Failure 404 {object} ErrorResponse "Feature not found"
// @Security BearerAuth
// @Router /features/{id} [delete]
func (h *FeatureHandler) DeleteFeature(c *gin.Context) {
	if err := h.featureService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
