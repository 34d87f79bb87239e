package services

import "time"

// ClinicService es un servicio ofrecido por la clínica (baño, consulta, etc).
// El nombre evita chocar con el Service de casos de uso del paquete.
type ClinicService struct {
	ID string

	Name        string
	Description string
	Price       float64

	CreatedAt time.Time
	UpdatedAt time.Time
}
