package pets

import (
	"context"
	"strings"
	"time"

	"github.com/Dev-Icaro/pet-impacta/internal/domain/fault"
	"github.com/Dev-Icaro/pet-impacta/internal/domain/patch"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	Name       string
	Species    string
	Breed      string
	Age        int
	OwnerName  string
	OwnerPhone string
	OwnerEmail string
}

// UpdateInput usa punteros para PATCH real: nil = no tocar.
// Un puntero a valor vacío sí entra en la directiva (presencia, no verdad).
type UpdateInput struct {
	Name       *string
	Species    *string
	Breed      *string
	Age        *int
	OwnerName  *string
	OwnerPhone *string
	OwnerEmail *string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Pet, error) {
	if strings.TrimSpace(in.Name) == "" {
		return Pet{}, fault.MissingField("name")
	}
	if strings.TrimSpace(in.Species) == "" {
		return Pet{}, fault.MissingField("species")
	}
	if strings.TrimSpace(in.OwnerName) == "" {
		return Pet{}, fault.MissingField("ownerName")
	}
	if in.Age < 0 {
		return Pet{}, fault.InvalidValue("age", "must not be negative")
	}

	now := s.now()
	p := Pet{
		Name:       strings.TrimSpace(in.Name),
		Species:    strings.TrimSpace(in.Species),
		Breed:      strings.TrimSpace(in.Breed),
		Age:        in.Age,
		OwnerName:  strings.TrimSpace(in.OwnerName),
		OwnerPhone: strings.TrimSpace(in.OwnerPhone),
		OwnerEmail: strings.TrimSpace(in.OwnerEmail),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	id, err := s.repo.Create(ctx, p)
	if err != nil {
		return Pet{}, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Pet, int, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// Update valida solo los campos presentes y aplica un update parcial.
// Con directiva vacía no se escribe nada: devuelve el estado actual
// sin avanzar updated_at.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Pet, error) {
	ok, err := s.repo.Exists(ctx, id)
	if err != nil {
		return Pet{}, err
	}
	if !ok {
		return Pet{}, fault.NotFound("Pet")
	}

	if in.Age != nil && *in.Age < 0 {
		return Pet{}, fault.InvalidValue("age", "must not be negative")
	}

	var d patch.Directive
	if in.Name != nil {
		d.Set("name", *in.Name)
	}
	if in.Species != nil {
		d.Set("species", *in.Species)
	}
	if in.Breed != nil {
		d.Set("breed", *in.Breed)
	}
	if in.Age != nil {
		d.Set("age", *in.Age)
	}
	if in.OwnerName != nil {
		d.Set("ownerName", *in.OwnerName)
	}
	if in.OwnerPhone != nil {
		d.Set("ownerPhone", *in.OwnerPhone)
	}
	if in.OwnerEmail != nil {
		d.Set("ownerEmail", *in.OwnerEmail)
	}

	if d.Empty() {
		return s.repo.GetByID(ctx, id)
	}

	if err := s.repo.UpdatePartial(ctx, id, &d, s.now()); err != nil {
		return Pet{}, err
	}
	return s.repo.GetByID(ctx, id)
}

// Delete aplica la política RESTRICT: una mascota con citas no se borra.
func (s *Service) Delete(ctx context.Context, id string) error {
	ok, err := s.repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return fault.NotFound("Pet")
	}

	inUse, err := s.repo.HasAppointments(ctx, id)
	if err != nil {
		return err
	}
	if inUse {
		return fault.Conflict("pet has appointments and cannot be deleted")
	}

	return s.repo.Delete(ctx, id)
}
