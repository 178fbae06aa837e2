package domain

const RoleAdmin = "ADMIN"

// AdminTokenCookie carries the admin access token for browser form posts.
const AdminTokenCookie = "admin_token"

const (
	// SettingsUpdatedParam is appended to the settings page URL after a save.
	SettingsUpdatedParam = "updated"
)
