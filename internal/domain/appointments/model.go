package appointments

import "time"

// Appointment es la fila persistida: tres referencias obligatorias,
// fecha y notas opcionales.
type Appointment struct {
	ID string

	PetID          string
	ServiceID      string
	VeterinarianID string

	AppointmentDate time.Time
	Notes           string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Details es la proyección de lectura: la cita más los campos de display
// derivados por join. Nunca se persisten sobre la fila de la cita.
type Details struct {
	Appointment

	PetName          string
	ServiceName      string
	VeterinarianName string
	ServicePrice     float64
}
