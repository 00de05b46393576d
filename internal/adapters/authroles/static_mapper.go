package authroles

import (
	domainauth "github.com/jobdesk/jobdesk/internal/domain/auth"
)

// StaticRoleMapper resolves roles by group membership against two configured
// group names. Admin wins over user; unknown groups map to guest.
type StaticRoleMapper struct {
	AdminGroup string
	UserGroup  string
}

func (m StaticRoleMapper) Map(groups []string) domainauth.Role {
	for _, g := range groups {
		if m.AdminGroup != "" && g == m.AdminGroup {
			return domainauth.RoleAdmin
		}
	}
	for _, g := range groups {
		if m.UserGroup != "" && g == m.UserGroup {
			return domainauth.RoleUser
		}
	}
	return domainauth.RoleGuest
}
