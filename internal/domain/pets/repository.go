package pets

import (
	"context"
	"time"

	"github.com/Dev-Icaro/pet-impacta/internal/domain/patch"
)

type Repository interface {
	// Create persiste la mascota y devuelve el ID asignado por el storage.
	Create(ctx context.Context, p Pet) (string, error)
	GetByID(ctx context.Context, id string) (Pet, error)
	List(ctx context.Context) ([]Pet, error)
	Count(ctx context.Context) (int, error)
	// UpdatePartial aplica solo los campos de la directiva y refresca
	// updated_at. Cero filas afectadas => fault.NotFound.
	UpdatePartial(ctx context.Context, id string, d *patch.Directive, updatedAt time.Time) error
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
	// HasAppointments reporta si alguna cita referencia a esta mascota.
	// Sostiene la política de borrado RESTRICT.
	HasAppointments(ctx context.Context, id string) (bool, error)
}
