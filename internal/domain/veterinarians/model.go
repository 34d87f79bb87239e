package veterinarians

import "time"

// Veterinarian es el profesional que atiende citas. LicenseNumber funciona
// como clave de negocio pero su unicidad no se valida en el write path.
type Veterinarian struct {
	ID string

	Name          string
	LicenseNumber string
	Phone         string
	Email         string

	CreatedAt time.Time
	UpdatedAt time.Time
}
