package forms

import "testing"

func TestPasswordMatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		password string
		confirm  string
		want     bool
	}{
		{name: "both empty", password: "", confirm: "", want: true},
		{name: "equal", password: "secret1", confirm: "secret1", want: true},
		{name: "different", password: "secret1", confirm: "secret2", want: false},
		{name: "only password typed", password: "secret1", confirm: "", want: false},
		{name: "only confirm typed", password: "", confirm: "secret1", want: false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := PasswordMatch(tc.password, tc.confirm); got != tc.want {
				t.Fatalf("PasswordMatch(%q, %q) = %v, want %v", tc.password, tc.confirm, got, tc.want)
			}
		})
	}
}

func TestRequire(t *testing.T) {
	t.Parallel()

	var v Validator
	v.Require("name", "  ")
	v.Require("email", "a@b.com")
	errs := v.Errors()
	if errs.Key("name") != ErrRequired {
		t.Fatalf("name error = %q", errs.Key("name"))
	}
	if errs.Key("email") != "" {
		t.Fatalf("email error = %q", errs.Key("email"))
	}
}

func TestEmailShape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value string
		valid bool
	}{
		{"a@b.com", true},
		{"first.last@example.org", true},
		{"not-an-email", false},
		{"a@b@c", false},
		{"", true}, // blank is Require's concern
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.value, func(t *testing.T) {
			t.Parallel()
			var v Validator
			v.Email("email", tc.value)
			if got := !v.Errors().Any(); got != tc.valid {
				t.Fatalf("Email(%q) valid = %v, want %v", tc.value, got, tc.valid)
			}
		})
	}
}

func TestPasswordLength(t *testing.T) {
	t.Parallel()

	var v Validator
	v.Password("password", "short")
	if v.Errors().Key("password") != ErrPasswordLength {
		t.Fatalf("error = %q", v.Errors().Key("password"))
	}

	var ok Validator
	ok.Password("password", "secret1")
	ok.Password("blank", "")
	if ok.Errors().Any() {
		t.Fatalf("unexpected errors: %v", ok.Errors())
	}
}

func TestConfirmPasswordMismatchBlocks(t *testing.T) {
	t.Parallel()

	var v Validator
	v.ConfirmPassword("confirm", "secret1", "secret2")
	if v.Errors().Key("confirm") != ErrPasswordMismatch {
		t.Fatalf("error = %q", v.Errors().Key("confirm"))
	}
}

func TestFirstErrorPerFieldWins(t *testing.T) {
	t.Parallel()

	var v Validator
	v.Require("password", "")
	v.Password("password", "")
	v.ConfirmPassword("password", "", "x")
	if v.Errors().Key("password") != ErrRequired {
		t.Fatalf("error = %q, want first recorded", v.Errors().Key("password"))
	}
}
