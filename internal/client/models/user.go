// Package models defines the user records managed by the client, the
// reference data they point to, and the transient filter and form state.
package models

// Department is a reference-data category a user belongs to. Inactive
// departments stay valid on existing users but are not offered for
// selection.
type Department struct {
	ID     string `json:"id"`
	Name   string `json:"nombre"`
	Active bool   `json:"activo"`
}

// Position has the same shape and rules as Department, scoped separately.
type Position struct {
	ID     string `json:"id"`
	Name   string `json:"nombre"`
	Active bool   `json:"activo"`
}

// User is a record as returned by the backend. Department and Position are
// pointers because the wire document may omit them; a persisted user always
// has both.
type User struct {
	ID             string      `json:"id"`
	Username       string      `json:"usuario"`
	FirstName      string      `json:"primerNombre"`
	MiddleName     string      `json:"segundoNombre"`
	LastName       string      `json:"primerApellido"`
	SecondLastName string      `json:"segundoApellido"`
	Department     *Department `json:"departamento,omitempty"`
	Position       *Position   `json:"cargo,omitempty"`
}

// DepartmentID returns the id of the referenced department or "".
func (u User) DepartmentID() string {
	if u.Department == nil {
		return ""
	}
	return u.Department.ID
}

// PositionID returns the id of the referenced position or "".
func (u User) PositionID() string {
	if u.Position == nil {
		return ""
	}
	return u.Position.ID
}

// ActiveDepartments filters to active entries, preserving order.
func ActiveDepartments(all []Department) []Department {
	out := make([]Department, 0, len(all))
	for _, d := range all {
		if d.Active {
			out = append(out, d)
		}
	}
	return out
}

// ActivePositions filters to active entries, preserving order.
func ActivePositions(all []Position) []Position {
	out := make([]Position, 0, len(all))
	for _, p := range all {
		if p.Active {
			out = append(out, p)
		}
	}
	return out
}
