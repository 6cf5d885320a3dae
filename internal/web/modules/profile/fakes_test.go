package profile

import (
	"context"
	"encoding/json"

	"github.com/uamlabs/labfront/internal/directory/users"
)

// fakeDirectory implements UserDirectory for tests with configurable
// return values, error injection, and call recording.
type fakeDirectory struct {
	updated   users.User
	updateErr error

	updateCalls int
	lastID      int
	lastUpdate  users.Update
}

func (f *fakeDirectory) Update(_ context.Context, id int, update users.Update) (users.User, error) {
	f.updateCalls++
	f.lastID = id
	f.lastUpdate = update
	if f.updateErr != nil {
		return users.User{}, f.updateErr
	}
	return f.updated, nil
}

// passwordWire exposes the serialized password sentinel for assertions.
func passwordWire(update users.Update) string {
	raw, err := json.Marshal(update.Password)
	if err != nil {
		return "marshal error"
	}
	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return "decode error"
	}
	return value
}
