package domain

import "time"

// Role represents a user's role in the editorial workflow.
type Role string

const (
	RoleAuthor      Role = "author"
	RoleReviewer    Role = "reviewer"
	RoleEditor      Role = "editor"
	RoleSuperAdmin  Role = "super_admin"
	RoleMotherAdmin Role = "mother_admin"
)

// ValidRoles contains all valid user roles.
var ValidRoles = []Role{
	RoleAuthor,
	RoleReviewer,
	RoleEditor,
	RoleSuperAdmin,
	RoleMotherAdmin,
}

// IsValidRole checks if a role is valid.
func IsValidRole(role Role) bool {
	for _, r := range ValidRoles {
		if r == role {
			return true
		}
	}
	return false
}

// CanDecide reports whether the role may issue editorial decisions.
func (r Role) CanDecide() bool {
	return r == RoleEditor || r == RoleSuperAdmin || r == RoleMotherAdmin
}

// User represents a platform user (author, reviewer, or editorial staff).
type User struct {
	ID               string    `json:"id"`
	Email            string    `json:"email"`
	Name             string    `json:"name"`
	Role             Role      `json:"role"`
	University       string    `json:"university,omitempty"`
	Bio              string    `json:"bio,omitempty"`
	OrcidID          *string   `json:"orcid_id,omitempty"`
	OrcidAccessToken *string   `json:"-"`
	IsActive         bool      `json:"is_active"`
	CreatedAt        time.Time `json:"created_at"`
}

// HasLinkedOrcid reports whether the user has linked ORCID credentials,
// required for the publish-time work push.
func (u *User) HasLinkedOrcid() bool {
	return u.OrcidID != nil && *u.OrcidID != "" &&
		u.OrcidAccessToken != nil && *u.OrcidAccessToken != ""
}
