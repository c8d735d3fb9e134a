package domain

// Role is the closed set of user roles.
type Role string

const (
	RoleManager        Role = "manager"
	RoleFarmAdmin      Role = "farm_admin"
	RoleAdminAssistant Role = "admin_assistant"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleManager, RoleFarmAdmin, RoleAdminAssistant:
		return true
	}
	return false
}

// DisplayName returns the role label shown to operators.
func (r Role) DisplayName() string {
	switch r {
	case RoleManager:
		return "Gerente"
	case RoleFarmAdmin:
		return "Administrador Finca"
	case RoleAdminAssistant:
		return "Auxiliar administrativa"
	}
	return ""
}

// Permission is a capability checked before an operation runs.
type Permission string

const (
	PermManageLivestock    Permission = "livestock:write"
	PermManageReproduction Permission = "reproduction:write"
	PermManageHealth       Permission = "health:write"
	PermManageFarms        Permission = "farms:write"
	PermManageUsers        Permission = "users:write"
	PermViewReports        Permission = "reports:read"
)

var rolePermissions = map[Role]map[Permission]bool{
	RoleManager: {
		PermManageLivestock:    true,
		PermManageReproduction: true,
		PermManageHealth:       true,
		PermManageFarms:        true,
		PermManageUsers:        true,
		PermViewReports:        true,
	},
	RoleFarmAdmin: {
		PermManageLivestock:    true,
		PermManageReproduction: true,
		PermManageHealth:       true,
		PermManageFarms:        true,
		PermViewReports:        true,
	},
	RoleAdminAssistant: {
		PermManageHealth: true,
		PermViewReports:  true,
	},
}

// Can reports whether the role grants p. Unknown roles grant nothing.
func (r Role) Can(p Permission) bool {
	return rolePermissions[r][p]
}
