// Package forms provides the local validation gate applied before any
// submission reaches the directory services.
package forms

import (
	"net/mail"
	"strings"
	"unicode/utf8"
)

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 6

// Localization keys for field errors.
const (
	ErrRequired         = "form.error_required"
	ErrEmail            = "form.error_email"
	ErrNumber           = "form.error_number"
	ErrPasswordLength   = "form.error_password_length"
	ErrPasswordMismatch = "form.error_password_mismatch"
)

// Errors maps field names to localization keys. The first error
// recorded for a field wins.
type Errors map[string]string

// Any reports whether any field failed validation.
func (e Errors) Any() bool { return len(e) > 0 }

// Key returns the localization key recorded for a field, or "".
func (e Errors) Key(field string) string { return e[field] }

// Validator accumulates field errors for one form submission.
type Validator struct {
	errs Errors
}

// Require records an error when value is blank.
func (v *Validator) Require(field, value string) {
	if strings.TrimSpace(value) == "" {
		v.add(field, ErrRequired)
	}
}

// Email records an error when value is not shaped like an address.
// Blank values are left to Require so a missing field reports once.
func (v *Validator) Email(field, value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		return
	}
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		v.add(field, ErrEmail)
	}
}

// Password records an error when a non-blank value is shorter than the
// minimum. Blank passwords are acceptable here; callers that need a
// password at all pair this with Require.
func (v *Validator) Password(field, value string) {
	if value == "" {
		return
	}
	if utf8.RuneCountInString(value) < MinPasswordLength {
		v.add(field, ErrPasswordLength)
	}
}

// Fail records an arbitrary field error, for checks the helpers above
// do not cover.
func (v *Validator) Fail(field, key string) {
	v.add(field, key)
}

// ConfirmPassword records a mismatch on the confirmation field.
func (v *Validator) ConfirmPassword(field, password, confirm string) {
	if !PasswordMatch(password, confirm) {
		v.add(field, ErrPasswordMismatch)
	}
}

// Errors returns the accumulated field errors (possibly empty).
func (v *Validator) Errors() Errors {
	if v.errs == nil {
		return Errors{}
	}
	return v.errs
}

func (v *Validator) add(field, key string) {
	if v.errs == nil {
		v.errs = Errors{}
	}
	if _, taken := v.errs[field]; taken {
		return
	}
	v.errs[field] = key
}

// PasswordMatch reports whether a password and its confirmation agree.
// An empty pair matches so an untouched confirmation field does not
// fail before the user starts typing.
func PasswordMatch(password, confirm string) bool {
	if password == "" && confirm == "" {
		return true
	}
	return password == confirm
}
