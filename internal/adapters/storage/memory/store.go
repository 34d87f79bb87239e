// Package memory implementa los cuatro repositorios sobre un Store
// compartido en memoria. Se usa en dev sin base y en los tests de punta
// a punta; el RWMutex único alcanza porque las citas necesitan leer
// mascotas, servicios y veterinarios para joins y chequeos de existencia.
package memory

import (
	"sync"

	"github.com/Dev-Icaro/pet-impacta/internal/domain/appointments"
	"github.com/Dev-Icaro/pet-impacta/internal/domain/pets"
	"github.com/Dev-Icaro/pet-impacta/internal/domain/services"
	"github.com/Dev-Icaro/pet-impacta/internal/domain/veterinarians"
)

type Store struct {
	mu sync.RWMutex

	pets         map[string]pets.Pet
	vets         map[string]veterinarians.Veterinarian
	services     map[string]services.ClinicService
	appointments map[string]appointments.Appointment
}

func NewStore() *Store {
	return &Store{
		pets:         make(map[string]pets.Pet),
		vets:         make(map[string]veterinarians.Veterinarian),
		services:     make(map[string]services.ClinicService),
		appointments: make(map[string]appointments.Appointment),
	}
}

func (s *Store) Pets() pets.Repository {
	return &petRepo{s: s}
}

func (s *Store) Veterinarians() veterinarians.Repository {
	return &vetRepo{s: s}
}

func (s *Store) Services() services.Repository {
	return &serviceRepo{s: s}
}

func (s *Store) Appointments() appointments.Repository {
	return &appointmentRepo{s: s}
}
