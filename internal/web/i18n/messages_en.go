package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	// Layout
	message.SetString(lang, "layout.app_name", "Lab Directory")
	message.SetString(lang, "nav.home", "Home")
	message.SetString(lang, "nav.profile", "My profile")
	message.SetString(lang, "nav.manage_accounts", "Manage accounts")
	message.SetString(lang, "nav.sign_out", "Sign out")

	// Shared actions
	message.SetString(lang, "common.save", "Save")
	message.SetString(lang, "common.cancel", "Cancel")
	message.SetString(lang, "common.edit", "Edit")
	message.SetString(lang, "common.delete", "Delete")
	message.SetString(lang, "common.yes", "Yes")
	message.SetString(lang, "common.no", "No")

	// Form validation
	message.SetString(lang, "form.error_required", "This field is required.")
	message.SetString(lang, "form.error_email", "Enter a valid email address.")
	message.SetString(lang, "form.error_number", "Enter a valid number.")
	message.SetString(lang, "form.error_password_length", "The password must be at least 6 characters long.")
	message.SetString(lang, "form.error_password_mismatch", "The passwords do not match.")

	// Login
	message.SetString(lang, "login.title", "Sign in")
	message.SetString(lang, "login.heading", "Sign in to the lab directory")
	message.SetString(lang, "login.email", "Email")
	message.SetString(lang, "login.password", "Password")
	message.SetString(lang, "login.submit", "Sign in")
	message.SetString(lang, "login.link_register", "Create an account")
	message.SetString(lang, "login.link_recover", "Forgot your password?")
	message.SetString(lang, "login.error_default", "Invalid credentials or user not found.")
	message.SetString(lang, "login.notice_signed_out", "You have signed out.")

	// Register
	message.SetString(lang, "register.title", "New account")
	message.SetString(lang, "register.heading", "Create your account")
	message.SetString(lang, "register.name", "Full name")
	message.SetString(lang, "register.email", "Email")
	message.SetString(lang, "register.password", "Password")
	message.SetString(lang, "register.confirm_password", "Confirm password")
	message.SetString(lang, "register.submit", "Create account")
	message.SetString(lang, "register.link_login", "Back to sign in")
	message.SetString(lang, "register.notice_created", "Account created. You can sign in now.")
	message.SetString(lang, "register.error_default", "Could not create the account. The email may already be registered.")

	// Recover password
	message.SetString(lang, "recover.title", "Recover password")
	message.SetString(lang, "recover.heading", "Reset your password")
	message.SetString(lang, "recover.email", "Email")
	message.SetString(lang, "recover.new_password", "New password")
	message.SetString(lang, "recover.confirm_password", "Confirm new password")
	message.SetString(lang, "recover.submit", "Update password")
	message.SetString(lang, "recover.link_login", "Back to sign in")
	message.SetString(lang, "recover.notice_updated", "Your password has been updated.")
	message.SetString(lang, "recover.error_default", "Could not update the password. Check the email you entered.")

	// Profile
	message.SetString(lang, "profile.title", "My profile")
	message.SetString(lang, "profile.heading", "My profile")
	message.SetString(lang, "profile.name", "Full name")
	message.SetString(lang, "profile.email", "Email")
	message.SetString(lang, "profile.password", "New password")
	message.SetString(lang, "profile.password_hint", "Leave blank to keep your current password.")
	message.SetString(lang, "profile.notice_saved", "Profile updated.")
	message.SetString(lang, "profile.error_default", "There was an error saving your changes.")

	// Admin users
	message.SetString(lang, "adminusers.title", "Accounts")
	message.SetString(lang, "adminusers.heading", "Manage accounts")
	message.SetString(lang, "adminusers.col_id", "ID")
	message.SetString(lang, "adminusers.col_name", "Name")
	message.SetString(lang, "adminusers.col_email", "Email")
	message.SetString(lang, "adminusers.col_active", "Active")
	message.SetString(lang, "adminusers.col_admin", "Admin")
	message.SetString(lang, "adminusers.col_created", "Created")
	message.SetString(lang, "adminusers.edit_heading", "Edit user")
	message.SetString(lang, "adminusers.field_active", "Active account")
	message.SetString(lang, "adminusers.field_admin", "Administrator")
	message.SetString(lang, "adminusers.password_hint", "Leave blank to keep the current password.")
	message.SetString(lang, "adminusers.delete_heading", "Delete user")
	message.SetString(lang, "adminusers.delete_confirm", "Are you sure you want to delete the account %q?")
	message.SetString(lang, "adminusers.error_load", "Could not load the user accounts.")
	message.SetString(lang, "adminusers.notice_updated", "User updated.")
	message.SetString(lang, "adminusers.error_update", "Could not save the user.")
	message.SetString(lang, "adminusers.notice_deleted", "User deleted.")
	message.SetString(lang, "adminusers.error_delete", "Could not delete the user.")

	// Labs
	message.SetString(lang, "labs.title", "Laboratories")
	message.SetString(lang, "labs.heading", "Laboratories")
	message.SetString(lang, "labs.col_code", "Code")
	message.SetString(lang, "labs.col_name", "Name")
	message.SetString(lang, "labs.col_location", "Location")
	message.SetString(lang, "labs.col_capacity", "Capacity")
	message.SetString(lang, "labs.col_active", "Active")
	message.SetString(lang, "labs.col_owner", "Assigned to")
	message.SetString(lang, "labs.owner_unassigned", "Unassigned")
	message.SetString(lang, "labs.empty", "No laboratories to show.")
	message.SetString(lang, "labs.new", "New laboratory")
	message.SetString(lang, "labs.new_heading", "New laboratory")
	message.SetString(lang, "labs.edit_heading", "Edit laboratory")
	message.SetString(lang, "labs.field_code", "Code")
	message.SetString(lang, "labs.field_name", "Name")
	message.SetString(lang, "labs.field_location", "Location")
	message.SetString(lang, "labs.field_capacity", "Capacity")
	message.SetString(lang, "labs.field_active", "Active")
	message.SetString(lang, "labs.field_owner", "Assigned user")
	message.SetString(lang, "labs.owner_none_option", "Unassigned")
	message.SetString(lang, "labs.delete_heading", "Delete laboratory")
	message.SetString(lang, "labs.delete_confirm", "Are you sure you want to delete the laboratory %q?")
	message.SetString(lang, "labs.error_load", "Could not load the laboratories.")
	message.SetString(lang, "labs.error_users_load", "Could not load the user list.")
	message.SetString(lang, "labs.notice_created", "Laboratory created.")
	message.SetString(lang, "labs.error_create", "Could not create the laboratory.")
	message.SetString(lang, "labs.notice_updated", "Laboratory updated.")
	message.SetString(lang, "labs.error_update", "Could not update the laboratory.")
	message.SetString(lang, "labs.notice_deleted", "Laboratory deleted.")
	message.SetString(lang, "labs.error_delete", "Could not delete the laboratory.")

	// Errors
	message.SetString(lang, "error.generic", "Something went wrong. Please try again.")
	message.SetString(lang, "error.not_found", "Page not found.")
}
