// Package authroles maps IdP group claims onto application roles.
package authroles

import (
	domainauth "github.com/seopulse/seopulse-api/internal/domain/auth"
)

// StaticRoleMapper maps groups by simple string membership. Members of
// AdminGroup become admins; everyone else is a regular user.
type StaticRoleMapper struct {
	AdminGroup string
}

// Map resolves a role from the group list.
func (m StaticRoleMapper) Map(groups []string) domainauth.Role {
	if m.AdminGroup != "" {
		for _, g := range groups {
			if g == m.AdminGroup {
				return domainauth.RoleAdmin
			}
		}
	}
	return domainauth.RoleUser
}
