package veterinarians

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
	Name          string
	LicenseNumber string
	Phone         string
	Email         string
}

type UpdateInput struct {
	Name          *string
	LicenseNumber *string
	Phone         *string
	Email         *string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Veterinarian, error) {
	if strings.TrimSpace(in.Name) == "" {
		return Veterinarian{}, fault.MissingField("name")
	}
	if strings.TrimSpace(in.LicenseNumber) == "" {
		return Veterinarian{}, fault.MissingField("licenseNumber")
	}
	if in.Email != "" && !validEmail(in.Email) {
		return Veterinarian{}, fault.InvalidValue("email", "")
	}

	now := s.now()
	v := Veterinarian{
		Name:          strings.TrimSpace(in.Name),
		LicenseNumber: strings.TrimSpace(in.LicenseNumber),
		Phone:         strings.TrimSpace(in.Phone),
		Email:         strings.TrimSpace(in.Email),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	id, err := s.repo.Create(ctx, v)
	if err != nil {
		return Veterinarian{}, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetByID(ctx context.Context, id string) (Veterinarian, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Veterinarian, int, error) {
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

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Veterinarian, error) {
	ok, err := s.repo.Exists(ctx, id)
	if err != nil {
		return Veterinarian{}, err
	}
	if !ok {
		return Veterinarian{}, fault.NotFound("Veterinarian")
	}

	if in.Email != nil && *in.Email != "" && !validEmail(*in.Email) {
		return Veterinarian{}, fault.InvalidValue("email", "")
	}

	var d patch.Directive
	if in.Name != nil {
		d.Set("name", *in.Name)
	}
	if in.LicenseNumber != nil {
		d.Set("licenseNumber", *in.LicenseNumber)
	}
	if in.Phone != nil {
		d.Set("phone", *in.Phone)
	}
	if in.Email != nil {
		d.Set("email", *in.Email)
	}

	if d.Empty() {
		return s.repo.GetByID(ctx, id)
	}

	if err := s.repo.UpdatePartial(ctx, id, &d, s.now()); err != nil {
		return Veterinarian{}, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	ok, err := s.repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return fault.NotFound("Veterinarian")
	}

	inUse, err := s.repo.HasAppointments(ctx, id)
	if err != nil {
		return err
	}
	if inUse {
		return fault.Conflict("veterinarian has appointments and cannot be deleted")
	}

	return s.repo.Delete(ctx, id)
}

// validEmail: chequeo mínimo local@dominio.tld, sin pretensión de RFC.
func validEmail(s string) bool {
	at := strings.IndexByte(s, '@')
	if at <= 0 || at == len(s)-1 {
		return false
	}
	domain := s[at+1:]
	dot := strings.IndexByte(domain, '.')
	if dot <= 0 || dot == len(domain)-1 {
		return false
	}
	return !strings.ContainsAny(s, " \t")
}
