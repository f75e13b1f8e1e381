package models

type UserRole string

const (
	UserRoleSuperAdmin UserRole = "SUPER_ADMIN"
	EmpresaAdminRole   UserRole = "EMPRESA_ADMIN_ROLE"
	EmpresaUserRole    UserRole = "EMPRESA_USER_ROLE"
)

var roleHumanName = map[UserRole]string{
	UserRoleSuperAdmin: "Superadministrador del sistema",
	EmpresaAdminRole:   "Administrador",
	EmpresaUserRole:    "Usuario",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsEmpresaAdmin() bool {
	return r == EmpresaAdminRole
}

func (r UserRole) IsSuperAdmin() bool {
	return r == UserRoleSuperAdmin
}

const SystemUser = "Sistema"
