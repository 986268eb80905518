package service_test

import (
	"time"

	"papermark-backend/internal/database/models"

	"github.com/google/uuid"
)

func membership(teamID, userID uuid.UUID, role models.Role) *models.UserTeam {
	return &models.UserTeam{
		TeamID: teamID,
		UserID: userID,
		Role:   role,
		Status: models.MemberStatusActive,
	}
}

func team(id uuid.UUID, plan models.Plan) *models.Team {
	return &models.Team{BaseModel: models.BaseModel{ID: id}, Name: "Acme", Plan: plan}
}

func strPtr(s string) *string {
	return &s
}

func timePtr(t time.Time) *time.Time {
	return &t
}
