package entity

import (
	"time"

	"github.com/google/uuid"
)

type Team struct {
	Id        uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// TeamMember has only a display name; members carry no login identity.
type TeamMember struct {
	Id         uuid.UUID
	TeamId     uuid.UUID
	MemberName string
	CreatedAt  time.Time
}

// TeamMemberWithTeam is the joined read shape for the all-members listing.
type TeamMemberWithTeam struct {
	TeamMember
	TeamName string
}
