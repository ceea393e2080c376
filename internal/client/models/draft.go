package models

// Draft is the editable scratch copy of a user while the form is open.
// It holds the ids of the selected department and position, not the
// objects; those are resolved on submit. The form tags carry the field
// names used in validation messages.
type Draft struct {
	Username       string `form:"usuario" validate:"required"`
	FirstName      string `form:"primerNombre" validate:"required"`
	MiddleName     string `form:"segundoNombre" validate:"omitempty"`
	LastName       string `form:"primerApellido" validate:"required"`
	SecondLastName string `form:"segundoApellido" validate:"omitempty"`
	DepartmentID   string `form:"departamentoId"`
	PositionID     string `form:"cargoId"`
}

// DraftFromUser copies every scalar field of u and extracts the reference ids.
func DraftFromUser(u User) Draft {
	return Draft{
		Username:       u.Username,
		FirstName:      u.FirstName,
		MiddleName:     u.MiddleName,
		LastName:       u.LastName,
		SecondLastName: u.SecondLastName,
		DepartmentID:   u.DepartmentID(),
		PositionID:     u.PositionID(),
	}
}
