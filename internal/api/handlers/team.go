package handlers

import (
	"net/http"

	"project-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TeamHandler handles HTTP requests for team operations
type TeamHandler struct {
	teamService service.TeamServiceInterface
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamService service.TeamServiceInterface) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

// CreateTeam handles POST /teams
// @Summary Create a new team
// @Description Create a team, its leader becomes its first member
// @Tags teams
// @Accept json
// @Produce json
// @Param team body service.TeamRequest true "Team data"
// @Success 201 {object} service.TeamResponse "Successfully created team"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Not enough permissions"
// @Failure 404 {object} ErrorResponse "Team leader not found"
// @Failure 409 {object} ErrorResponse "Leader already belongs to a team"
// @Security BearerAuth
// @Router /teams [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	var req service.TeamRequest
	if !bindJSON(c, &req) {
		return
	}

	team, err := h.teamService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, team)
}

// GetTeam handles GET /teams/:id
// @Summary Get team by ID
// @Tags teams
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Success 200 {object} service.TeamResponse "Successfully retrieved team"
// @Failure 400 {object} ErrorResponse "Invalid team ID"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /teams/{id} [get]
func (h *TeamHandler) GetTeam(c *gin.Context) {
	team, err := h.teamService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// GetTeamName handles GET /teams/:id/name
// @Summary Get team name
// @Tags teams
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Success 200 {object} map[string]string
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /teams/{id}/name [get]
func (h *TeamHandler) GetTeamName(c *gin.Context) {
	name, err := h.teamService.GetName(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"name": name})
}

// ListTeams handles GET /teams
// @Summary List teams
// @Description List all teams, or only those led by one user
// @Tags teams
// @Produce json
// @Param leader_id query string false "Leader ID (UUID)"
// @Success 200 {array} service.TeamResponse "Successfully retrieved teams"
// @Failure 400 {object} ErrorResponse "Invalid leader ID"
// @Security BearerAuth
// @Router /teams [get]
func (h *TeamHandler) ListTeams(c *gin.Context) {
	var (
		teams []service.TeamResponse
		err   error
	)
	if leaderID, ok := c.GetQuery("leader_id"); ok {
		teams, err = h.teamService.GetAllByLeader(c.Request.Context(), leaderID)
	} else {
		teams, err = h.teamService.GetAll(c.Request.Context())
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, teams)
}

// GetTeamMembers handles GET /teams/:id/members
// @Summary List team members
// @Tags teams
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Success 200 {array} service.UserResponse "Successfully retrieved team members"
// @Failure 400 {object} ErrorResponse "Invalid team ID"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /teams/{id}/members [get]
func (h *TeamHandler) GetTeamMembers(c *gin.Context) {
	members, err := h.teamService.GetMembers(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, members)
}

// UpdateTeam handles PUT /teams/:id
// @Summary Update team
// @Description Update a team, a new leader is added as a member
// @Tags teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param team body service.TeamRequest true "Updated team data"
// @Success 200 {object} service.TeamResponse "Successfully updated team"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Not enough permissions"
// @Failure 404 {object} ErrorResponse "Team or leader not found"
// @Failure 409 {object} ErrorResponse "Leader already belongs to another team"
// @Security BearerAuth
// @Router /teams/{id} [put]
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	var req service.TeamRequest
	if !bindJSON(c, &req) {
		return
	}

	team, err := h.teamService.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// AddTeamMember handles POST /teams/:id/members/:userId
// @Summary Add a member to a team
// @Tags teams
// @Param id path string true "Team ID (UUID)"
// @Param userId path string true "User ID (UUID)"
// @Success 204
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 403 {object} ErrorResponse "Not enough permissions"
// @Failure 404 {object} ErrorResponse "Team or user not found"
// @Failure 409 {object} ErrorResponse "User already belongs to a team"
// @Security BearerAuth
// @Router /teams/{id}/members/{userId} [post]
func (h *TeamHandler) AddTeamMember(c *gin.Context) {
	if err := h.teamService.AddMember(c.Request.Context(), c.Param("id"), c.Param("userId")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// RemoveTeamMember handles DELETE /teams/:id/members/:userId
// @Summary Remove a member from a team
// @Tags teams
// @Param id path string true "Team ID (UUID)"
// @Param userId path string true "User ID (UUID)"
// @Success 204
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 403 {object} ErrorResponse "Not enough permissions"
// @Failure 404 {object} ErrorResponse "Team, user or membership not found"
// @Security BearerAuth
// @Router /teams/{id}/members/{userId} [delete]
func (h *TeamHandler) RemoveTeamMember(c *gin.Context) {
	if err := h.teamService.RemoveMember(c.Request.Context(), c.Param("id"), c.Param("userId")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteTeam handles DELETE /teams/:id
// @Summary Delete team
// @Tags teams
// @Param id path string true "Team ID (UUID)"
// @Success 204
// @Failure 403 {object} ErrorResponse "Not enough permissions"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /teams/{id} [delete]
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	if err := h.teamService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
