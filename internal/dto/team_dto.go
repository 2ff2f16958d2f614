package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateTeamRequest struct {
	Name string `json:"name" validate:"required"`
}

type TeamResponse struct {
	Id        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

type AddTeamMemberRequest struct {
	TeamId     uuid.UUID
	MemberName string `json:"member_name" validate:"required"`
}

type TeamMemberResponse struct {
	Id         uuid.UUID `json:"id"`
	TeamId     uuid.UUID `json:"team_id"`
	MemberName string    `json:"member_name"`
	TeamName   string    `json:"team_name,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
