// Package routepath centralizes the navigation surface of the web front-end.
package routepath

import "fmt"

// Public views.
const (
	Root            = "/"
	Login           = "/login"
	Logout          = "/logout"
	NewAccount      = "/new-account"
	RecoverPassword = "/recover-password"
)

// Authenticated views. The labs listing is the home view.
const (
	AppRoot       = "/app"
	AppRootPrefix = "/app/"

	AppLabs   = "/app/labs"
	AppLabNew = "/app/labs/new"

	AppProfile = "/app/profile"

	AppAdminUsers = "/app/admin/users"
)

// ServeMux patterns for id-scoped lab routes.
const (
	LabEditPattern   = "/app/labs/{id}/edit"
	LabSavePattern   = "/app/labs/{id}"
	LabDeletePattern = "/app/labs/{id}/delete"
)

// ServeMux patterns for id-scoped admin user routes.
const (
	AdminUserEditPattern   = "/app/admin/users/{id}/edit"
	AdminUserSavePattern   = "/app/admin/users/{id}"
	AdminUserDeletePattern = "/app/admin/users/{id}/delete"
)

// StaticPrefix serves embedded assets.
const StaticPrefix = "/static/"

// AppLabEdit returns the edit form path for one lab.
func AppLabEdit(id int) string { return fmt.Sprintf("/app/labs/%d/edit", id) }

// AppLabSave returns the save target path for one lab.
func AppLabSave(id int) string { return fmt.Sprintf("/app/labs/%d", id) }

// AppLabDelete returns the delete confirmation/commit path for one lab.
func AppLabDelete(id int) string { return fmt.Sprintf("/app/labs/%d/delete", id) }

// AppAdminUserEdit returns the edit form path for one user.
func AppAdminUserEdit(id int) string { return fmt.Sprintf("/app/admin/users/%d/edit", id) }

// AppAdminUserSave returns the save target path for one user.
func AppAdminUserSave(id int) string { return fmt.Sprintf("/app/admin/users/%d", id) }

// AppAdminUserDelete returns the delete confirmation/commit path for one user.
func AppAdminUserDelete(id int) string { return fmt.Sprintf("/app/admin/users/%d/delete", id) }
