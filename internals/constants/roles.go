package constants

const (
	RoleSuperAdmin = "superAdmin"
	RoleAdmin      = "admin"
	RoleSales      = "sales"
	RoleTeacher    = "teacher"
	RoleStudent    = "student"
)

var (
	DashboardRoles = []string{RoleSuperAdmin, RoleAdmin, RoleSales}

	AdminAndAbove = []string{RoleSuperAdmin, RoleAdmin}

	SalesAndAbove = []string{RoleSuperAdmin, RoleAdmin, RoleSales}
)
