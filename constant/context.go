package constant

type ContextKey string

const (
	UserIDKey    ContextKey = "user_id"
	UserRoleKey  ContextKey = "user_role"
	UserEmailKey ContextKey = "user_email"
)

// User roles carried in the JWT role claim.
const (
	RoleParent = "parent"
	RoleStaff  = "staff"
)
