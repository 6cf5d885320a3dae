package labs

import (
	"fmt"
	"sort"

	"github.com/uamlabs/labfront/internal/directory/labs"
	"github.com/uamlabs/labfront/internal/directory/users"
	"github.com/uamlabs/labfront/internal/web/session"
	"github.com/uamlabs/labfront/internal/web/templates"
)

// visibleLabs scopes the listing to the viewer: administrators see the
// full directory, everyone else only the labs assigned to them. The
// filter is pure and idempotent.
func visibleLabs(list []labs.Lab, viewer session.User) []labs.Lab {
	if viewer.Admin {
		return list
	}
	visible := make([]labs.Lab, 0, len(list))
	for _, lab := range list {
		if lab.OwnerID != nil && *lab.OwnerID == viewer.ID {
			visible = append(visible, lab)
		}
	}
	return visible
}

// ownerLabel resolves the owner display text for one lab. Assigned labs
// show "name (email)". An owner id a complete user listing does not
// contain reads as unassigned; when the listing itself could not be
// fetched (degraded) the bare id is kept so assignments stay visible.
func ownerLabel(lab labs.Lab, byID map[int]users.User, unassigned string, degraded bool) string {
	if lab.OwnerID == nil {
		return unassigned
	}
	owner, ok := byID[*lab.OwnerID]
	if !ok {
		if degraded {
			return fmt.Sprintf("#%d", *lab.OwnerID)
		}
		return unassigned
	}
	return fmt.Sprintf("%s (%s)", owner.Name, owner.Email)
}

func usersByID(list []users.User) map[int]users.User {
	byID := make(map[int]users.User, len(list))
	for _, user := range list {
		byID[user.ID] = user
	}
	return byID
}

// ownerOptions builds the assignment dropdown, sorted by name for a
// stable form.
func ownerOptions(list []users.User) []templates.OwnerOption {
	options := make([]templates.OwnerOption, 0, len(list))
	for _, user := range list {
		options = append(options, templates.OwnerOption{
			ID:    user.ID,
			Label: fmt.Sprintf("%s (%s)", user.Name, user.Email),
		})
	}
	sort.Slice(options, func(i, j int) bool { return options[i].Label < options[j].Label })
	return options
}

func labRows(list []labs.Lab, byID map[int]users.User, unassigned string, degraded bool) []templates.LabRow {
	rows := make([]templates.LabRow, 0, len(list))
	for _, lab := range list {
		rows = append(rows, templates.LabRow{
			ID:       lab.ID,
			Code:     lab.Code,
			Name:     lab.Name,
			Location: lab.Location,
			Capacity: lab.Capacity,
			Active:   lab.Active,
			Owner:    ownerLabel(lab, byID, unassigned, degraded),
		})
	}
	return rows
}
