package domain

import "time"

type Role string

const (
	RoleStudent      Role = "STUDENT"
	RoleOrganization Role = "ORGANIZATION"
	RoleAdmin        Role = "ADMIN"
)

type User struct {
	ID           int32     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Role         Role      `json:"role"`
	OrgID        *int32    `json:"org_id,omitempty"` // Set for ORGANIZATION accounts
	CreatedOn    time.Time `json:"created_on"`
}
