package domain

import (
	token "course_content_service/pkg/token"
)

// Principal the already-authenticated actor a mutation runs as.
type Principal struct {
	ID   string
	Role token.RoleType
}

// IsAdmin report whether the principal holds the admin role
func (p Principal) IsAdmin() bool {
	return p.Role == token.RoleAdmin
}

// CanAccess ownership predicate applied uniformly to all three entity
// kinds: admins pass, otherwise the principal must be the owner. For
// chapters and videos the ownerID is the owning course's creator,
// resolved by walking up the hierarchy on every operation.
func (p Principal) CanAccess(ownerID string) bool {
	return p.IsAdmin() || p.ID == ownerID
}
