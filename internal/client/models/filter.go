package models

// Filter is the pair of optional table filters. An empty id means the axis
// is unconstrained. Ids are not checked against reference data: an unknown
// id simply matches nothing.
type Filter struct {
	DepartmentID string
	PositionID   string
}

func (f *Filter) SetDepartment(id string) { f.DepartmentID = id }

func (f *Filter) SetPosition(id string) { f.PositionID = id }

func (f *Filter) Clear() { *f = Filter{} }

// IsZero reports whether no axis is constrained.
func (f Filter) IsZero() bool {
	return f.DepartmentID == "" && f.PositionID == ""
}

// Matches reports whether u satisfies both active predicates.
func (f Filter) Matches(u User) bool {
	if f.DepartmentID != "" && !SameID(u.DepartmentID(), f.DepartmentID) {
		return false
	}
	if f.PositionID != "" && !SameID(u.PositionID(), f.PositionID) {
		return false
	}
	return true
}

// FilterUsers returns the users matching f, as a subsequence of users in the
// original order. It never aliases the input slice.
func FilterUsers(users []User, f Filter) []User {
	out := make([]User, 0, len(users))
	for _, u := range users {
		if f.Matches(u) {
			out = append(out, u)
		}
	}
	return out
}
