package labs

import (
	"context"

	"github.com/uamlabs/labfront/internal/directory/labs"
	"github.com/uamlabs/labfront/internal/directory/users"
)

// fakeLabDirectory implements LabDirectory for tests with configurable
// return values, error injection, and call recording.
type fakeLabDirectory struct {
	list      []labs.Lab
	listErr   error
	created   labs.Lab
	createErr error
	updated   labs.Lab
	updateErr error
	deleteErr error

	listCalls   int
	createCalls int
	updateCalls int
	deleteCalls int
	lastCreated labs.Lab
	lastID      int
	lastUpdate  labs.Lab
	lastDeleted int
}

func (f *fakeLabDirectory) List(context.Context) ([]labs.Lab, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.list, nil
}

func (f *fakeLabDirectory) Create(_ context.Context, lab labs.Lab) (labs.Lab, error) {
	f.createCalls++
	f.lastCreated = lab
	if f.createErr != nil {
		return labs.Lab{}, f.createErr
	}
	return f.created, nil
}

func (f *fakeLabDirectory) Update(_ context.Context, id int, lab labs.Lab) (labs.Lab, error) {
	f.updateCalls++
	f.lastID = id
	f.lastUpdate = lab
	if f.updateErr != nil {
		return labs.Lab{}, f.updateErr
	}
	return f.updated, nil
}

func (f *fakeLabDirectory) Delete(_ context.Context, id int) error {
	f.deleteCalls++
	f.lastDeleted = id
	return f.deleteErr
}

// fakeUserDirectory implements UserDirectory for owner resolution.
type fakeUserDirectory struct {
	list    []users.User
	listErr error

	listCalls int
}

func (f *fakeUserDirectory) List(context.Context) ([]users.User, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.list, nil
}

func intPtr(v int) *int { return &v }

func newPopulatedFakes() (*fakeLabDirectory, *fakeUserDirectory) {
	labDirectory := &fakeLabDirectory{
		list: []labs.Lab{
			{ID: 1, Code: "LAB-01", Name: "Redes", Location: "Edificio A", Capacity: 30, Active: true, OwnerID: intPtr(2)},
			{ID: 2, Code: "LAB-02", Name: "Bases de Datos", Location: "Edificio B", Capacity: 24, Active: true, OwnerID: intPtr(3)},
			{ID: 3, Code: "LAB-03", Name: "Robótica", Location: "Edificio C", Capacity: 16, Active: false},
		},
	}
	userDirectory := &fakeUserDirectory{
		list: []users.User{
			{ID: 1, Name: "Ada", Email: "ada@example.com", Active: true, Admin: true},
			{ID: 2, Name: "Grace", Email: "grace@example.com", Active: true},
			{ID: 3, Name: "Edsger", Email: "edsger@example.com", Active: true},
		},
	}
	return labDirectory, userDirectory
}
