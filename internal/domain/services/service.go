package services

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
	Name        string
	Description string
	// Price viene como puntero para distinguir "no informado" de "cero";
	// ambos se validan distinto.
	Price *float64
}

type UpdateInput struct {
	Name        *string
	Description *string
	Price       *float64
}

func (s *Service) Create(ctx context.Context, in CreateInput) (ClinicService, error) {
	if strings.TrimSpace(in.Name) == "" {
		return ClinicService{}, fault.MissingField("name")
	}
	if in.Price == nil {
		return ClinicService{}, fault.MissingField("price")
	}
	if *in.Price < 0 {
		return ClinicService{}, fault.InvalidValue("price", "must not be negative")
	}

	now := s.now()
	cs := ClinicService{
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Price:       *in.Price,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	id, err := s.repo.Create(ctx, cs)
	if err != nil {
		return ClinicService{}, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetByID(ctx context.Context, id string) (ClinicService, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]ClinicService, int, error) {
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

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (ClinicService, error) {
	ok, err := s.repo.Exists(ctx, id)
	if err != nil {
		return ClinicService{}, err
	}
	if !ok {
		return ClinicService{}, fault.NotFound("Service")
	}

	if in.Price != nil && *in.Price < 0 {
		return ClinicService{}, fault.InvalidValue("price", "must not be negative")
	}

	var d patch.Directive
	if in.Name != nil {
		d.Set("name", *in.Name)
	}
	if in.Description != nil {
		d.Set("description", *in.Description)
	}
	if in.Price != nil {
		d.Set("price", *in.Price)
	}

	if d.Empty() {
		return s.repo.GetByID(ctx, id)
	}

	if err := s.repo.UpdatePartial(ctx, id, &d, s.now()); err != nil {
		return ClinicService{}, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	ok, err := s.repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return fault.NotFound("Service")
	}

	inUse, err := s.repo.HasAppointments(ctx, id)
	if err != nil {
		return err
	}
	if inUse {
		return fault.Conflict("service has appointments and cannot be deleted")
	}

	return s.repo.Delete(ctx, id)
}
