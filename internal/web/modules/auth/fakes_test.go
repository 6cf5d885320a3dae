package auth

import (
	"context"

	"github.com/uamlabs/labfront/internal/directory/users"
)

// fakeDirectory implements UserDirectory for tests with configurable
// return values, error injection, and call recording.
type fakeDirectory struct {
	loginUser users.User
	loginErr  error

	registerErr error
	resetErr    error

	lastLoginEmail    string
	lastLoginPassword string
	lastRegistration  users.Registration
	lastResetEmail    string
	lastResetPassword string

	registerCalls int
	resetCalls    int
}

func (f *fakeDirectory) Login(_ context.Context, email, password string) (users.User, error) {
	f.lastLoginEmail = email
	f.lastLoginPassword = password
	if f.loginErr != nil {
		return users.User{}, f.loginErr
	}
	return f.loginUser, nil
}

func (f *fakeDirectory) Register(_ context.Context, reg users.Registration) error {
	f.registerCalls++
	f.lastRegistration = reg
	return f.registerErr
}

func (f *fakeDirectory) ResetPassword(_ context.Context, email, newPassword string) error {
	f.resetCalls++
	f.lastResetEmail = email
	f.lastResetPassword = newPassword
	return f.resetErr
}
