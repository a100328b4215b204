package handlers

import (
	"net/http"

	"project-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// LookupHandler serves one of the roles, statuses or types collections
type LookupHandler struct {
	lookupService service.LookupServiceInterface
}

// NewLookupHandler creates a handler for a lookup collection
func NewLookupHandler(lookupService service.LookupServiceInterface) *LookupHandler {
	return &LookupHandler{lookupService: lookupService}
}

// Create handles POST /{roles|statuses|types}
// @Summary Create a lookup value
// @Tags lookups
// @Accept json
// @Produce json
// @Param collection path string true "roles, statuses or types"
// @Param value body service.LookupRequest true "Lookup value"
// @Success 201 {object} service.LookupResponse
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Not enough permissions"
// @Security BearerAuth
// @Router /{collection} [post]
func (h *LookupHandler) Create(c *gin.Context) {
	var req service.LookupRequest
	if !bindJSON(c, &req) {
		return
	}

	value, err := h.lookupService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, value)
}

// Get handles GET /{roles|statuses|types}/:id
// @Summary Get a lookup value
// @Tags lookups
// @Produce json
// @Param collection path string true "roles, statuses or types"
// @Param id path int true "Lookup ID"
// @Success 200 {object} service.LookupResponse
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 404 {object} ErrorResponse "Not found"
// @Security BearerAuth
// @Router /{collection}/{id} [get]
func (h *LookupHandler) Get(c *gin.Context) {
	value, err := h.lookupService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, value)
}

// List handles GET /{roles|statuses|types}
// @Summary List lookup values
// @Tags lookups
// @Produce json
// @Param collection path string true "roles, statuses or types"
// @Success 200 {array} service.LookupResponse
// @Security BearerAuth
// @Router /{collection} [get]
func (h *LookupHandler) List(c *gin.Context) {
	values, err := h.lookupService.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, values)
}

// Update handles PUT /{roles|statuses|types}/:id
// @Summary Rename a lookup value
// @Tags lookups
// @Accept json
// @Produce json
// @Param collection path string true "roles, statuses or types"
// @Param id path int true "Lookup ID"
// @Param value body service.LookupRequest true "Lookup value"
// @Success 200 {object} service.LookupResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Not enough permissions"
// @Failure 404 {object} ErrorResponse "Not found"
// @Security BearerAuth
// @Router /{collection}/{id} [put]
func (h *LookupHandler) Update(c *gin.Context) {
	var req service.LookupRequest
	if !bindJSON(c, &req) {
		return
	}

	value, err := h.lookupService.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, value)
}

// Delete handles DELETE /{roles|statuses|types}/:id
// @Summary Delete a lookup value
// @Tags lookups
// @Param collection path string true "roles, statuses or types"
// @Param id path int true "Lookup ID"
// @Success 204
// @Failure 403 {object} ErrorResponse "Not enough permissions"
// @Failure 404 {object} ErrorResponse "Not found"
// @Security BearerAuth
// @Router /{collection}/{id} [delete]
func (h *LookupHandler) Delete(c *gin.Context) {
	if err := h.lookupService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
