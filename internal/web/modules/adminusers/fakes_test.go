package adminusers

import (
	"context"
	"encoding/json"

	"github.com/uamlabs/labfront/internal/directory/users"
)

// fakeDirectory implements UserDirectory for tests with configurable
// return values, error injection, and call recording.
type fakeDirectory struct {
	list      []users.User
	listErr   error
	updated   users.User
	updateErr error
	deleteErr error

	listCalls   int
	updateCalls int
	deleteCalls int
	lastID      int
	lastUpdate  users.Update
	lastDeleted int
}

func newPopulatedFakeDirectory() *fakeDirectory {
	return &fakeDirectory{
		list: []users.User{
			{ID: 1, Name: "Ada", Email: "ada@example.com", Active: true, Admin: true, CreatedAt: "2026-01-01T00:00:00Z"},
			{ID: 2, Name: "Grace", Email: "grace@example.com", Active: true, CreatedAt: "2026-02-01T00:00:00Z"},
			{ID: 3, Name: "Edsger", Email: "edsger@example.com", Active: false, CreatedAt: "2026-03-01T00:00:00Z"},
		},
	}
}

func (f *fakeDirectory) List(context.Context) ([]users.User, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.list, nil
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

func (f *fakeDirectory) Delete(_ context.Context, id int) error {
	f.deleteCalls++
	f.lastDeleted = id
	return f.deleteErr
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
