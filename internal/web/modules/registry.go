// Package modules defines web module registry helpers.
package modules

import (
	"github.com/uamlabs/labfront/internal/web/module"
	"github.com/uamlabs/labfront/internal/web/modules/adminusers"
	"github.com/uamlabs/labfront/internal/web/modules/auth"
	"github.com/uamlabs/labfront/internal/web/modules/labs"
	"github.com/uamlabs/labfront/internal/web/modules/profile"
	"github.com/uamlabs/labfront/internal/web/platform/requestmeta"
	"github.com/uamlabs/labfront/internal/web/session"
)

// Mount aliases the module mount contract.
type Mount = module.Mount

// Module aliases the module interface contract.
type Module = module.Module

// Dependencies carries the directory clients and shared state required
// to compose the web module registry. Each client field is typed as the
// narrow interface defined by the consuming module, so modules
// physically cannot reach operations they were not given.
type Dependencies struct {
	AuthDirectory    auth.UserDirectory
	ProfileDirectory profile.UserDirectory
	AccountDirectory adminusers.UserDirectory
	LabDirectory     labs.LabDirectory
	OwnerDirectory   labs.UserDirectory

	Sessions session.Store
	Policy   requestmeta.SchemePolicy
}

// Compose builds the full module registry in mount order. The auth
// module mounts at the root and must come last so its catch-all does
// not shadow the app prefixes.
func Compose(deps Dependencies) []Module {
	return []Module{
		labs.New(deps.LabDirectory, deps.OwnerDirectory, deps.Sessions, deps.Policy),
		profile.New(deps.ProfileDirectory, deps.Sessions, deps.Policy),
		adminusers.New(deps.AccountDirectory, deps.Sessions, deps.Policy),
		auth.New(deps.AuthDirectory, deps.Sessions, deps.Policy),
	}
}
