package models

import "encoding/json"

// UserPayload is the body of create and update requests. The department and
// position are always carried resolved; how they go on the wire depends on
// IDRefs.
type UserPayload struct {
	ID             string
	Username       string
	FirstName      string
	MiddleName     string
	LastName       string
	SecondLastName string
	Department     Department
	Position       Position

	// IDRefs switches the wire encoding from nested departamento/cargo
	// objects to bare IdDepartamento/IdCargo fields.
	IDRefs bool
}

// NewUserPayload builds a payload from a draft and the resolved references.
// id is empty on create; the nil GUID in any spelling is treated the same
// way, since the server alone assigns identifiers.
func NewUserPayload(id string, d Draft, dept Department, pos Position) UserPayload {
	if IsNilID(id) {
		id = ""
	}
	return UserPayload{
		ID:             id,
		Username:       d.Username,
		FirstName:      d.FirstName,
		MiddleName:     d.MiddleName,
		LastName:       d.LastName,
		SecondLastName: d.SecondLastName,
		Department:     dept,
		Position:       pos,
	}
}

type payloadObjects struct {
	ID             string     `json:"id,omitempty"`
	Username       string     `json:"usuario"`
	FirstName      string     `json:"primerNombre"`
	MiddleName     string     `json:"segundoNombre"`
	LastName       string     `json:"primerApellido"`
	SecondLastName string     `json:"segundoApellido"`
	Department     Department `json:"departamento"`
	Position       Position   `json:"cargo"`
}

type payloadIDs struct {
	ID             string `json:"id,omitempty"`
	Username       string `json:"usuario"`
	FirstName      string `json:"primerNombre"`
	MiddleName     string `json:"segundoNombre"`
	LastName       string `json:"primerApellido"`
	SecondLastName string `json:"segundoApellido"`
	DepartmentID   string `json:"IdDepartamento"`
	PositionID     string `json:"IdCargo"`
}

// MarshalJSON omits "id" when empty, so creates never carry a client id.
func (p UserPayload) MarshalJSON() ([]byte, error) {
	if p.IDRefs {
		return json.Marshal(payloadIDs{
			ID:             p.ID,
			Username:       p.Username,
			FirstName:      p.FirstName,
			MiddleName:     p.MiddleName,
			LastName:       p.LastName,
			SecondLastName: p.SecondLastName,
			DepartmentID:   p.Department.ID,
			PositionID:     p.Position.ID,
		})
	}
	return json.Marshal(payloadObjects{
		ID:             p.ID,
		Username:       p.Username,
		FirstName:      p.FirstName,
		MiddleName:     p.MiddleName,
		LastName:       p.LastName,
		SecondLastName: p.SecondLastName,
		Department:     p.Department,
		Position:       p.Position,
	})
}
