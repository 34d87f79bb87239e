package veterinarians

import (
	"context"
	"time"

	"github.com/Dev-Icaro/pet-impacta/internal/domain/patch"
)

type Repository interface {
	Create(ctx context.Context, v Veterinarian) (string, error)
	GetByID(ctx context.Context, id string) (Veterinarian, error)
	List(ctx context.Context) ([]Veterinarian, error)
	Count(ctx context.Context) (int, error)
	UpdatePartial(ctx context.Context, id string, d *patch.Directive, updatedAt time.Time) error
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
	HasAppointments(ctx context.Context, id string) (bool, error)
}
