package memory

import (
	"context"
	"sort"
	"time"

	"github.com/Dev-Icaro/pet-impacta/internal/domain/fault"
	"github.com/Dev-Icaro/pet-impacta/internal/domain/patch"
	"github.com/Dev-Icaro/pet-impacta/internal/domain/services"

	"github.com/google/uuid"
)

type serviceRepo struct {
	s *Store
}

func (r *serviceRepo) Create(ctx context.Context, cs services.ClinicService) (string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cs.ID = uuid.NewString()
	r.s.services[cs.ID] = cs
	return cs.ID, nil
}

func (r *serviceRepo) GetByID(ctx context.Context, id string) (services.ClinicService, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	cs, ok := r.s.services[id]
	if !ok {
		return services.ClinicService{}, fault.NotFound("Service")
	}
	return cs, nil
}

func (r *serviceRepo) List(ctx context.Context) ([]services.ClinicService, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]services.ClinicService, 0, len(r.s.services))
	for _, cs := range r.s.services {
		out = append(out, cs)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out, nil
}

func (r *serviceRepo) Count(ctx context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.services), nil
}

func (r *serviceRepo) UpdatePartial(ctx context.Context, id string, d *patch.Directive, updatedAt time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cs, ok := r.s.services[id]
	if !ok {
		return fault.NotFound("Service")
	}

	for _, a := range d.Assignments() {
		switch a.Field {
		case "name":
			cs.Name = a.Value.(string)
		case "description":
			cs.Description = a.Value.(string)
		case "price":
			cs.Price = a.Value.(float64)
		}
	}
	cs.UpdatedAt = updatedAt
	r.s.services[id] = cs
	return nil
}

func (r *serviceRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.services[id]; !ok {
		return fault.NotFound("Service")
	}
	delete(r.s.services, id)
	return nil
}

func (r *serviceRepo) Exists(ctx context.Context, id string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	_, ok := r.s.services[id]
	return ok, nil
}

func (r *serviceRepo) HasAppointments(ctx context.Context, id string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, a := range r.s.appointments {
		if a.ServiceID == id {
			return true, nil
		}
	}
	return false, nil
}
