package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

type User struct {
	Id           uuid.UUID
	Email        string
	PasswordHash *string
	Name         string
	Role         UserRole
	LastSignedIn time.Time
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}
