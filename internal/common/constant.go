package common

// Resource paths of the backend API, relative to the configured base URL.
const (
	UsersPath       = "/usuarios"
	DepartmentsPath = "/departamentos"
	PositionsPath   = "/cargos"
)
