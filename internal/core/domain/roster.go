package domain

// Role names a team grouping supplied by the roster file.
type Role string

// RoleUnassigned is the bucket for submitters missing from the roster.
const RoleUnassigned Role = "Unassigned"

// String returns the string representation.
func (r Role) String() string {
	return string(r)
}

// Member is one roster entry mapping a submitter name to a role.
type Member struct {
	// Name matches Record.Name exactly, case-sensitively.
	Name string

	// Role is the team grouping.
	Role Role
}

// Roster is the externally supplied name-to-role lookup.
type Roster []Member

// RoleOf returns the member's role, or RoleUnassigned for names the
// roster does not know.
func (r Roster) RoleOf(name string) Role {
	for _, m := range r {
		if m.Name == name {
			return m.Role
		}
	}
	return RoleUnassigned
}
