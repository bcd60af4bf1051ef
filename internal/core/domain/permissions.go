package domain

import (
	"encoding/json"
	"slices"
)

// Actions an employee may hold on a module.
const (
	ActionView   = "view"
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// Console modules gated by the permission guard. Names match the upstream
// permission payload keys.
const (
	ModuleDashboard    = "dashboard"
	ModuleLeads        = "leads"
	ModuleLoans        = "loan-requests"
	ModuleBusiness     = "business-management"
	ModuleEmployees    = "roles-permissions"
	ModuleLogs         = "logs"
	ModuleBlogs        = "blogs"
	ModuleNews         = "news"
	ModuleTestimonials = "testimonials"
	ModuleDictionary   = "financial-dictionary"
	ModuleUTMLinks     = "utm-links"
)

// PermissionMap maps a module name to the list of actions an employee may
// perform on it. Membership is exact string match.
type PermissionMap map[string][]string

// ParsePermissions decodes a raw permission payload. Callers decide how to
// treat a decode failure; the guard deliberately fails open on one.
func ParsePermissions(raw string) (PermissionMap, error) {
	var m PermissionMap
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return nil, err
	}
	if m == nil {
		m = PermissionMap{}
	}
	return m, nil
}

// Allows reports whether action is listed for module. A module absent from
// the map has an empty action list, so every action on it is denied.
func (m PermissionMap) Allows(module, action string) bool {
	return slices.Contains(m[module], action)
}

// Toggle grants action on module when absent and revokes it when present.
// A module whose last action is revoked is removed from the map, so
// toggling an action on and back off restores the map exactly.
func (m PermissionMap) Toggle(module, action string) {
	actions := m[module]
	if i := slices.Index(actions, action); i >= 0 {
		actions = slices.Delete(actions, i, i+1)
		if len(actions) == 0 {
			delete(m, module)
			return
		}
		m[module] = actions
		return
	}
	m[module] = append(actions, action)
}

// Encode renders the map as canonical JSON: object keys are sorted by
// encoding/json, action lists are sorted here. Two maps holding the same
// grants always encode to the same bytes.
func (m PermissionMap) Encode() (string, error) {
	canonical := make(PermissionMap, len(m))
	for module, actions := range m {
		sorted := slices.Clone(actions)
		slices.Sort(sorted)
		canonical[module] = sorted
	}
	b, err := json.Marshal(canonical)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Clone returns a deep copy safe to mutate independently.
func (m PermissionMap) Clone() PermissionMap {
	out := make(PermissionMap, len(m))
	for module, actions := range m {
		out[module] = slices.Clone(actions)
	}
	return out
}
