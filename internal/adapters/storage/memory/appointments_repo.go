package memory

import (
	"context"
	"sort"
	"time"

	"github.com/Dev-Icaro/pet-impacta/internal/domain/appointments"
	"github.com/Dev-Icaro/pet-impacta/internal/domain/fault"
	"github.com/Dev-Icaro/pet-impacta/internal/domain/patch"

	"github.com/google/uuid"
)

type appointmentRepo struct {
	s *Store
}

func (r *appointmentRepo) Create(ctx context.Context, a appointments.Appointment) (string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	a.ID = uuid.NewString()
	r.s.appointments[a.ID] = a
	return a.ID, nil
}

func (r *appointmentRepo) GetByID(ctx context.Context, id string) (appointments.Details, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	a, ok := r.s.appointments[id]
	if !ok {
		return appointments.Details{}, fault.NotFound("Appointment")
	}
	return r.detailsLocked(a), nil
}

func (r *appointmentRepo) List(ctx context.Context) ([]appointments.Details, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]appointments.Details, 0, len(r.s.appointments))
	for _, a := range r.s.appointments {
		out = append(out, r.detailsLocked(a))
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].AppointmentDate.After(out[j].AppointmentDate)
	})

	return out, nil
}

func (r *appointmentRepo) Count(ctx context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.appointments), nil
}

func (r *appointmentRepo) UpdatePartial(ctx context.Context, id string, d *patch.Directive, updatedAt time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	a, ok := r.s.appointments[id]
	if !ok {
		return fault.NotFound("Appointment")
	}

	for _, as := range d.Assignments() {
		switch as.Field {
		case "petId":
			a.PetID = as.Value.(string)
		case "serviceId":
			a.ServiceID = as.Value.(string)
		case "veterinarianId":
			a.VeterinarianID = as.Value.(string)
		case "appointmentDate":
			a.AppointmentDate = as.Value.(time.Time)
		case "notes":
			a.Notes = as.Value.(string)
		}
	}
	a.UpdatedAt = updatedAt
	r.s.appointments[id] = a
	return nil
}

func (r *appointmentRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.appointments[id]; !ok {
		return fault.NotFound("Appointment")
	}
	delete(r.s.appointments, id)
	return nil
}

func (r *appointmentRepo) Exists(ctx context.Context, id string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	_, ok := r.s.appointments[id]
	return ok, nil
}

func (r *appointmentRepo) PetExists(ctx context.Context, id string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	_, ok := r.s.pets[id]
	return ok, nil
}

func (r *appointmentRepo) ServiceExists(ctx context.Context, id string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	_, ok := r.s.services[id]
	return ok, nil
}

func (r *appointmentRepo) VeterinarianExists(ctx context.Context, id string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	_, ok := r.s.vets[id]
	return ok, nil
}

// detailsLocked resuelve el "join" contra los otros maps. El caller ya
// tiene el lock tomado.
func (r *appointmentRepo) detailsLocked(a appointments.Appointment) appointments.Details {
	d := appointments.Details{Appointment: a}
	if p, ok := r.s.pets[a.PetID]; ok {
		d.PetName = p.Name
	}
	if cs, ok := r.s.services[a.ServiceID]; ok {
		d.ServiceName = cs.Name
		d.ServicePrice = cs.Price
	}
	if v, ok := r.s.vets[a.VeterinarianID]; ok {
		d.VeterinarianName = v.Name
	}
	return d
}
