package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/synergy-dev/synergysphere/internal/types"
	"github.com/synergy-dev/synergysphere/internal/utils"
)

type CreateTeamRequest struct {
	Name string `json:"name" binding:"required"`
	// Accepted for compatibility with older clients; must match the
	// authenticated user when present.
	LeaderID uint `json:"leader_id"`
}

type AddTeamMemberRequest struct {
	UserID uint `json:"user_id" binding:"required"`
}

type TeamResponse struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	LeaderID uint   `json:"leader_id"`
}

type TeamDetailResponse struct {
	ID       uint                 `json:"id"`
	Name     string               `json:"name"`
	LeaderID uint                 `json:"leader_id"`
	Members  []types.UserResponse `json:"members"`
}

func (h *Handler) CreateTeam(ctx *gin.Context) {
	var req CreateTeamRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if req.LeaderID != 0 && req.LeaderID != userID {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Teams can only be created on behalf of yourself"})
		return
	}

	team, err := h.svc.CreateTeam(userID, req.Name)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, TeamResponse{
		ID:       team.ID,
		Name:     team.Name,
		LeaderID: team.LeaderID,
	})
}

func (h *Handler) ListTeams(ctx *gin.Context) {
	teams, err := h.svc.Teams()

	if err != nil {
		respondError(ctx, err)
		return
	}

	response := make([]TeamResponse, 0, len(teams))

	for _, team := range teams {
		response = append(response, TeamResponse{
			ID:       team.ID,
			Name:     team.Name,
			LeaderID: team.LeaderID,
		})
	}

	ctx.JSON(http.StatusOK, response)
}

func (h *Handler) GetTeam(ctx *gin.Context) {
	teamID, err := utils.ParseIDParam(ctx, "team_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	team, err := h.svc.Team(teamID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	members := make([]types.UserResponse, 0, len(team.Memberships))

	for _, membership := range team.Memberships {
		members = append(members, types.UserResponse{
			ID:    membership.User.ID,
			Name:  membership.User.Name,
			Email: membership.User.Email,
		})
	}

	ctx.JSON(http.StatusOK, TeamDetailResponse{
		ID:       team.ID,
		Name:     team.Name,
		LeaderID: team.LeaderID,
		Members:  members,
	})
}

func (h *Handler) AddTeamMember(ctx *gin.Context) {
	teamID, err := utils.ParseIDParam(ctx, "team_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req AddTeamMemberRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "User ID is required"})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if err := h.svc.AddTeamMember(userID, teamID, req.UserID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "User added to team successfully"})
}

func (h *Handler) RemoveTeamMember(ctx *gin.Context) {
	teamID, err := utils.ParseIDParam(ctx, "team_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	memberID, err := utils.ParseIDParam(ctx, "user_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if err := h.svc.RemoveTeamMember(userID, teamID, memberID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "User removed from team successfully"})
}
