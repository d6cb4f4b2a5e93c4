package constants

// Environment names
const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"
)

// Table names
const (
	TableAccounts         = "accounts"
	TableServiceRequests  = "service_requests"
	TableArchivedRequests = "archived_requests"
	TableScheduleSlots    = "schedule_slots"
)

// Gin context keys set by the session middleware
const (
	ContextKeyLogin = "login"
	ContextKeyRole  = "user_role"
)

// The bootstrap administrator account guaranteed to exist after schema initialization.
const BootstrapAdminLogin = "admin"

// Permission resources and actions used by the casbin enforcer.
const (
	ResourceRequests = "requests"
	ResourceArchive  = "archive"

	ActionList    = "list"
	ActionDelete  = "delete"
	ActionArchive = "archive"
)
