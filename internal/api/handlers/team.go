package handlers

import (
	"net/http"

	"papermark-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TeamHandler handles HTTP requests for teams, members and invitations
type TeamHandler struct {
	teamService service.TeamServiceInterface
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamService service.TeamServiceInterface) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

// CreateTeam handles POST /api/v1/teams
// @Summary Create a team
// @Description Create a team on the free plan; the caller becomes its admin
// @Tags teams
// @Accept json
// @Produce json
// @Param team body service.CreateTeamRequest true "Team data"
// @Success 201 {object} service.TeamResponse
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Security BearerAuth
// @Router /api/v1/teams [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req service.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	team, err := h.teamService.CreateTeam(userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, team)
}

// ListTeams handles GET /api/v1/teams
// @Summary List my teams
// @Tags teams
// @Produce json
// @Success 200 {array} service.TeamResponse
// @Security BearerAuth
// @Router /api/v1/teams [get]
func (h *TeamHandler) ListTeams(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	teams, err := h.teamService.ListTeams(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, teams)
}

// GetTeam handles GET /api/v1/teams/:teamId
// @Summary Get a team
// @Tags teams
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Success 200 {object} service.TeamResponse
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /api/v1/teams/{teamId} [get]
func (h *TeamHandler) GetTeam(c *gin.Context) {
	teamID, ok := pathTeamID(c)
	if !ok {
		return
	}
	team, err := h.teamService.GetTeam(teamID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

// UpdateTeam handles PATCH /api/v1/teams/:teamId
// @Summary Rename a team
// @Tags teams
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param team body service.UpdateTeamRequest true "Team data"
// @Success 200 {object} service.TeamResponse
// @Failure 403 {object} ErrorResponse "Admin or manager role required"
// @Security BearerAuth
// @Router /api/v1/teams/{teamId} [patch]
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	teamID, ok := pathTeamID(c)
	if !ok {
		return
	}
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req service.UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	team, err := h.teamService.UpdateTeam(teamID, userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

// DeleteTeam handles DELETE /api/v1/teams/:teamId
// @Summary Delete a team
// @Tags teams
// @Param teamId path string true "Team ID (UUID)"
// @Success 204 "Team deleted"
// @Failure 409 {object} ErrorResponse "Team has an active subscription"
// @Security BearerAuth
// @Router /api/v1/teams/{teamId} [delete]
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	teamID, ok := pathTeamID(c)
	if !ok {
		return
	}
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	if err := h.teamService.DeleteTeam(teamID, userID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListMembers handles GET /api/v1/teams/:teamId/members
// @Summary List team members
// @Tags teams
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Success 200 {array} service.MemberResponse
// @Security BearerAuth
// @Router /api/v1/teams/{teamId}/members [get]
func (h *TeamHandler) ListMembers(c *gin.Context) {
	teamID, ok := pathTeamID(c)
	if !ok {
		return
	}
	members, err := h.teamService.ListMembers(teamID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, members)
}

// ChangeMemberRole handles PATCH /api/v1/teams/:teamId/members/:userId
// @Summary Change a member's role
// @Tags teams
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param userId path string true "User ID (UUID)"
// @Param role body service.ChangeRoleRequest true "New role"
// @Success 200 {object} service.MemberResponse
// @Failure 409 {object} ErrorResponse "Last admin cannot be demoted"
// @Security BearerAuth
// @Router /api/v1/teams/{teamId}/members/{userId} [patch]
func (h *TeamHandler) ChangeMemberRole(c *gin.Context) {
	teamID, ok := pathTeamID(c)
	if !ok {
		return
	}
	actorID, ok := currentUser(c)
	if !ok {
		return
	}
	memberID, ok := uuidParam(c, "userId", "user")
	if !ok {
		return
	}
	var req service.ChangeRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	member, err := h.teamService.ChangeMemberRole(teamID, actorID, memberID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}

// RemoveMember handles DELETE /api/v1/teams/:teamId/members/:userId
// @Summary Remove a member or leave the team
// @Tags teams
// @Param teamId path string true "Team ID (UUID)"
// @Param userId path string true "User ID (UUID)"
// @Success 204 "Member removed"
// @Failure 409 {object} ErrorResponse "Last admin cannot leave"
// @Security BearerAuth
// @Router /api/v1/teams/{teamId}/members/{userId} [delete]
func (h *TeamHandler) RemoveMember(c *gin.Context) {
	teamID, ok := pathTeamID(c)
	if !ok {
		return
	}
	actorID, ok := currentUser(c)
	if !ok {
		return
	}
	memberID, ok := uuidParam(c, "userId", "user")
	if !ok {
		return
	}
	if err := h.teamService.RemoveMember(teamID, actorID, memberID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// InviteMember handles POST /api/v1/teams/:teamId/invitations
// @Summary Invite a member by email
// @Tags teams
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param invitation body service.InviteMemberRequest true "Invitation"
// @Success 201 {object} service.InvitationResponse
// @Failure 402 {object} ErrorResponse "Plan user limit reached"
// @Security BearerAuth
// @Router /api/v1/teams/{teamId}/invitations [post]
func (h *TeamHandler) InviteMember(c *gin.Context) {
	teamID, ok := pathTeamID(c)
	if !ok {
		return
	}
	actorID, ok := currentUser(c)
	if !ok {
		return
	}
	var req service.InviteMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	invitation, err := h.teamService.InviteMember(c.Request.Context(), teamID, actorID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, invitation)
}

// AcceptInvitation handles POST /api/invitations/accept
// @Summary Accept a team invitation
// @Tags teams
// @Accept json
// @Produce json
// @Param invitation body service.AcceptInvitationRequest true "Invitation token"
// @Success 200 {object} service.TeamResponse
// @Failure 403 {object} ErrorResponse "Invitation was issued to another email"
// @Failure 410 {object} ErrorResponse "Invitation expired"
// @Security BearerAuth
// @Router /api/invitations/accept [post]
func (h *TeamHandler) AcceptInvitation(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req service.AcceptInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	team, err := h.teamService.AcceptInvitation(userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, team)
}
