package handler

const (
	errInternalServer     = "Internal server error"
	errEmailTaken         = "Email already registered"
	errInvalidCredentials = "Invalid email or password"
	errAccountDisabled    = "Account disabled. Contact support."
	errUserNotFound       = "User not found"
)
