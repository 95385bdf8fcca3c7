package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "bucketwise/internal/errors"
	"bucketwise/internal/services"
)

// TeamHandler handles team management requests.
type TeamHandler struct {
	teamService services.TeamServicer
}

// NewTeamHandler creates a new TeamHandler.
func NewTeamHandler(teamService services.TeamServicer) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

// CreateTeamRequest represents the request payload for creating a team.
type CreateTeamRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// UpdateTeamRequest represents the request payload for renaming a team.
type UpdateTeamRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// CreateTeam handles team creation.
// @Summary     Create a team
// @Description Create a team owned by the authenticated user
// @Tags        teams
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateTeamRequest true "Team details"
// @Success     201 {object} models.Team "Team created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     409 {object} ErrorResponse "Already in a team"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /teams [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	team, err := h.teamService.CreateTeam(userID, req.Name)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"team": team})
}

// GetTeam returns the authenticated user's team.
// @Summary     Get team
// @Description Get the authenticated user's team with its members
// @Tags        teams
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} models.Team "Team"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Not a member"
// @Failure     404 {object} ErrorResponse "Team not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /teams/me [get]
func (h *TeamHandler) GetTeam(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	teamID, err := getTeamID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	team, err := h.teamService.GetTeam(userID, teamID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"team": team})
}

// UpdateTeam renames the team. Owner only.
// @Summary     Rename team
// @Description Rename the authenticated user's team (owner only)
// @Tags        teams
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body UpdateTeamRequest true "New team name"
// @Success     200 {object} models.Team "Team updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Not the owner"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /teams/me [put]
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	teamID, err := getTeamID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	team, err := h.teamService.UpdateTeam(userID, teamID, req.Name)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"team": team})
}
