package memory

import (
	"context"
	"sort"
	"time"

	"github.com/Dev-Icaro/pet-impacta/internal/domain/fault"
	"github.com/Dev-Icaro/pet-impacta/internal/domain/patch"
	"github.com/Dev-Icaro/pet-impacta/internal/domain/veterinarians"

	"github.com/google/uuid"
)

type vetRepo struct {
	s *Store
}

func (r *vetRepo) Create(ctx context.Context, v veterinarians.Veterinarian) (string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	v.ID = uuid.NewString()
	r.s.vets[v.ID] = v
	return v.ID, nil
}

func (r *vetRepo) GetByID(ctx context.Context, id string) (veterinarians.Veterinarian, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	v, ok := r.s.vets[id]
	if !ok {
		return veterinarians.Veterinarian{}, fault.NotFound("Veterinarian")
	}
	return v, nil
}

func (r *vetRepo) List(ctx context.Context) ([]veterinarians.Veterinarian, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]veterinarians.Veterinarian, 0, len(r.s.vets))
	for _, v := range r.s.vets {
		out = append(out, v)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out, nil
}

func (r *vetRepo) Count(ctx context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.vets), nil
}

func (r *vetRepo) UpdatePartial(ctx context.Context, id string, d *patch.Directive, updatedAt time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	v, ok := r.s.vets[id]
	if !ok {
		return fault.NotFound("Veterinarian")
	}

	for _, a := range d.Assignments() {
		switch a.Field {
		case "name":
			v.Name = a.Value.(string)
		case "licenseNumber":
			v.LicenseNumber = a.Value.(string)
		case "phone":
			v.Phone = a.Value.(string)
		case "email":
			v.Email = a.Value.(string)
		}
	}
	v.UpdatedAt = updatedAt
	r.s.vets[id] = v
	return nil
}

func (r *vetRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.vets[id]; !ok {
		return fault.NotFound("Veterinarian")
	}
	delete(r.s.vets, id)
	return nil
}

func (r *vetRepo) Exists(ctx context.Context, id string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	_, ok := r.s.vets[id]
	return ok, nil
}

func (r *vetRepo) HasAppointments(ctx context.Context, id string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, a := range r.s.appointments {
		if a.VeterinarianID == id {
			return true, nil
		}
	}
	return false, nil
}
