package appointments

import (
	"context"
	"time"

	"github.com/Dev-Icaro/pet-impacta/internal/domain/patch"
)

type Repository interface {
	Create(ctx context.Context, a Appointment) (string, error)
	GetByID(ctx context.Context, id string) (Details, error)
	// List devuelve las citas con sus campos de display, ordenadas por
	// appointment_date descendente.
	List(ctx context.Context) ([]Details, error)
	Count(ctx context.Context) (int, error)
	// UpdatePartial aplica exactamente los campos de la directiva más el
	// refresco de updated_at, acotado al id. Si la fila desapareció entre
	// la validación y la ejecución devuelve fault.NotFound("Appointment"),
	// nunca éxito silencioso.
	UpdatePartial(ctx context.Context, id string, d *patch.Directive, updatedAt time.Time) error
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)

	// Chequeos de existencia previos a cualquier escritura con FK.
	PetExists(ctx context.Context, id string) (bool, error)
	ServiceExists(ctx context.Context, id string) (bool, error)
	VeterinarianExists(ctx context.Context, id string) (bool, error)
}
