package domain

// AccessLevelGod grants unconditional access, bypassing the permission map.
const AccessLevelGod = "god_level"

// Storage field names carried over from the browser client this console
// gateway replaced. The upstream API still issues permission payloads keyed
// this way, so the session store persists them under the same names.
const (
	FieldToken       = "adminToken"
	FieldAccessLevel = "adminAccessLevel"
	FieldPermissions = "adminPermissions"
)

// Session is the per-browser state held by the gateway: the upstream bearer
// token, the employee's access level, and the raw permission payload exactly
// as the upstream returned it at login.
type Session struct {
	ID          string
	Token       string
	Email       string
	AccessLevel string
	// RawPermissions is the JSON-encoded module-to-actions mapping. It is
	// kept verbatim: the permission guard decides what to do with an empty
	// or malformed payload, not the store.
	RawPermissions string
}

// Authenticated reports whether the session carries a token. Token presence
// is the only check the gateway performs; validity is the upstream's call.
func (s *Session) Authenticated() bool {
	return s != nil && s.Token != ""
}
