package pets

import "time"

// Pet representa una mascota registrada en la clínica, con los datos de
// contacto del dueño desnormalizados en la misma fila.
type Pet struct {
	ID string

	Name    string
	Species string
	Breed   string
	Age     int

	OwnerName  string
	OwnerPhone string
	OwnerEmail string

	CreatedAt time.Time
	UpdatedAt time.Time
}
