package handlers

import (
	"net/http"

	"project-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CommentHandler handles HTTP requests for comment operations
type CommentHandler struct {
	commentService service.CommentServiceInterface
}

// NewCommentHandler creates a new comment handler
func NewCommentHandler(commentService service.CommentServiceInterface) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// CreateComment handles POST /comments
// @Summary Create a new comment
// @Description Create a comment on exactly one feature or task
// @Tags comments
// @Accept json
// @Produce json
// @Param comment body service.CommentRequest true "Comment data"
// @Success 201 {object} service.CommentResponse
// @Failure 400 {object} ErrorResponse "Invalid request body or parent"
// @Failure 403 {object} ErrorResponse "Not enough permissions"
// @Failure 404 {object} ErrorResponse "Assignee, feature or task not found"
// @Security BearerAuth
// @Router /comments [post]
func (h *CommentHandler) CreateComment(c *gin.Context) {
	var req service.CommentRequest
	if !bindJSON(c, &req) {
		return
	}

	comment, err := h.commentService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// GetComment handles GET /comments/:id
// @Summary Get comment by ID
// @Tags comments
// @Produce json
// @Param id path string true "Comment ID (UUID)"
// @Success 200 {object} service.CommentResponse
// @Failure 400 {object} ErrorResponse "Invalid comment ID"
// @Failure 404 {object} ErrorResponse "Comment not found"
// @Security BearerAuth
// @Router /comments/{id} [get]
func (h *CommentHandler) GetComment(c *gin.Context) {
	comment, err := h.commentService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, comment)
}

// ListComments handles GET /comments
// @Summary List comments
// @Description List the comments of a feature, a task or an assignee. One filter is required.
// @Tags comments
// @Produce json
// @Param feature_id query string false "Feature ID (UUID)"
// @Param task_id query string false "Task ID (UUID)"
// @Param assignee_id query string false "Assignee ID (UUID)"
// @Success 200 {array} service.CommentResponse
// @Failure 400 {object} ErrorResponse "Missing or invalid filter"
// @Failure 404 {object} ErrorResponse "Feature, task or assignee not found"
// @Security BearerAuth
// @Router /comments [get]
func (h *CommentHandler) ListComments(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		comments []service.CommentResponse
		err      error
	)
	if featureID, ok := c.GetQuery("feature_id"); ok {
		comments, err = h.commentService.GetByFeature(ctx, featureID)
	} else if taskID, ok := c.GetQuery("task_id"); ok {
		comments, err = h.commentService.GetByTask(ctx, taskID)
	} else if assigneeID, ok := c.GetQuery("assignee_id"); ok {
		comments, err = h.commentService.GetByAssignee(ctx, assigneeID)
	} else {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "one of feature_id, task_id or assignee_id is required"})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, comments)
}

// UpdateComment handles PUT /comments/:id
// @Summary Update comment
// @Tags comments
// @Accept json
// @Produce json
// @Param id path string true "Comment ID (UUID)"
// @Param comment body service.CommentRequest true "Updated comment data"
// @Success 200 {object} service.CommentResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Not enough permissions"
// @Failure 404 {object} ErrorResponse "Comment not found"
// @Security BearerAuth
// @Router /comments/{id} [put]
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	var req service.CommentRequest
	if !bindJSON(c, &req) {
		return
	}

	comment, err := h.commentService.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, comment)
}

// DeleteComment handles DELETE /comments/:id
// @Summary Delete comment
// @Tags comments
// @Param id path string true "Comment ID (UUID)"
// @Success 204
// @Failure 403 {object} ErrorResponse "Not enough permissions"
// @Failure 404 {object} ErrorResponse "Comment not found"
// @Security BearerAuth
// @Router /comments/{id} [delete]
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	if err := h.commentService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
