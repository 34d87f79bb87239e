package memory

import (
	"context"
	"sort"
	"time"

	"github.com/Dev-Icaro/pet-impacta/internal/domain/fault"
	"github.com/Dev-Icaro/pet-impacta/internal/domain/patch"
	"github.com/Dev-Icaro/pet-impacta/internal/domain/pets"

	"github.com/google/uuid"
)

type petRepo struct {
	s *Store
}

func (r *petRepo) Create(ctx context.Context, p pets.Pet) (string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p.ID = uuid.NewString()
	r.s.pets[p.ID] = p
	return p.ID, nil
}

func (r *petRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.pets[id]
	if !ok {
		return pets.Pet{}, fault.NotFound("Pet")
	}
	return p, nil
}

func (r *petRepo) List(ctx context.Context) ([]pets.Pet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]pets.Pet, 0, len(r.s.pets))
	for _, p := range r.s.pets {
		out = append(out, p)
	}

	// mismo orden que el repo de Postgres
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out, nil
}

func (r *petRepo) Count(ctx context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.pets), nil
}

func (r *petRepo) UpdatePartial(ctx context.Context, id string, d *patch.Directive, updatedAt time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.pets[id]
	if !ok {
		return fault.NotFound("Pet")
	}

	for _, a := range d.Assignments() {
		switch a.Field {
		case "name":
			p.Name = a.Value.(string)
		case "species":
			p.Species = a.Value.(string)
		case "breed":
			p.Breed = a.Value.(string)
		case "age":
			p.Age = a.Value.(int)
		case "ownerName":
			p.OwnerName = a.Value.(string)
		case "ownerPhone":
			p.OwnerPhone = a.Value.(string)
		case "ownerEmail":
			p.OwnerEmail = a.Value.(string)
		}
	}
	p.UpdatedAt = updatedAt
	r.s.pets[id] = p
	return nil
}

func (r *petRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.pets[id]; !ok {
		return fault.NotFound("Pet")
	}
	delete(r.s.pets, id)
	return nil
}

func (r *petRepo) Exists(ctx context.Context, id string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	_, ok := r.s.pets[id]
	return ok, nil
}

func (r *petRepo) HasAppointments(ctx context.Context, id string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, a := range r.s.appointments {
		if a.PetID == id {
			return true, nil
		}
	}
	return false, nil
}
