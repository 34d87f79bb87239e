package services

import (
	"context"
	"time"

	"github.com/Dev-Icaro/pet-impacta/internal/domain/patch"
)

type Repository interface {
	Create(ctx context.Context, cs ClinicService) (string, error)
	GetByID(ctx context.Context, id string) (ClinicService, error)
	List(ctx context.Context) ([]ClinicService, error)
	Count(ctx context.Context) (int, error)
	UpdatePartial(ctx context.Context, id string, d *patch.Directive, updatedAt time.Time) error
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
	HasAppointments(ctx context.Context, id string) (bool, error)
}
