package appointments

import (
	"context"
	"strings"
	"time"

	"github.com/Dev-Icaro/pet-impacta/internal/domain/fault"
	"github.com/Dev-Icaro/pet-impacta/internal/domain/patch"
)

// Service es el guardián del write path de citas: valida invariantes
// cruzadas (las tres referencias deben existir) y temporales (fecha
// parseable y estrictamente futura) antes de emitir cualquier escritura.
// Las validaciones cortan en la primera falla y no se escribe nada hasta
// que todas pasan.
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
	PetID           string
	ServiceID       string
	VeterinarianID  string
	AppointmentDate string
	Notes           string
}

// UpdateInput: solo los campos presentes (puntero != nil) se validan y
// se tocan. "notes": "" presente sí entra en la directiva.
type UpdateInput struct {
	PetID           *string
	ServiceID       *string
	VeterinarianID  *string
	AppointmentDate *string
	Notes           *string
}

// dateLayouts acepta ISO 8601 con y sin zona; el front manda RFC3339.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Create valida en orden fijo, cortando en la primera falla:
// presencia de petId, serviceId, veterinarianId y appointmentDate;
// fecha parseable; fecha estrictamente futura; y recién después los
// chequeos de existencia en prioridad pet -> service -> veterinarian.
// La regla de futuro aplica solo al momento de escribir: una cita puede
// quedar legítimamente "en el pasado" con el paso del tiempo.
func (s *Service) Create(ctx context.Context, in CreateInput) (Details, error) {
	if strings.TrimSpace(in.PetID) == "" {
		return Details{}, fault.MissingField("petId")
	}
	if strings.TrimSpace(in.ServiceID) == "" {
		return Details{}, fault.MissingField("serviceId")
	}
	if strings.TrimSpace(in.VeterinarianID) == "" {
		return Details{}, fault.MissingField("veterinarianId")
	}
	if strings.TrimSpace(in.AppointmentDate) == "" {
		return Details{}, fault.MissingField("appointmentDate")
	}

	when, ok := parseDate(in.AppointmentDate)
	if !ok {
		return Details{}, fault.InvalidValue("appointmentDate", "")
	}
	if !when.After(s.now()) {
		return Details{}, fault.InvalidValue("appointmentDate", "must be future")
	}

	if err := s.checkReferences(ctx, in.PetID, in.ServiceID, in.VeterinarianID); err != nil {
		return Details{}, err
	}

	now := s.now()
	a := Appointment{
		PetID:           in.PetID,
		ServiceID:       in.ServiceID,
		VeterinarianID:  in.VeterinarianID,
		AppointmentDate: when,
		Notes:           strings.TrimSpace(in.Notes),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	id, err := s.repo.Create(ctx, a)
	if err != nil {
		return Details{}, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetByID(ctx context.Context, id string) (Details, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Details, int, error) {
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

// Update valida la propia cita primero, después cada campo presente con
// la misma regla que Create (fecha antes que referencias), y arma la
// directiva en orden fijo de campos. Directiva vacía = no-op de lectura:
// se devuelve el estado actual sin escribir y sin avanzar updated_at.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Details, error) {
	ok, err := s.repo.Exists(ctx, id)
	if err != nil {
		return Details{}, err
	}
	if !ok {
		return Details{}, fault.NotFound("Appointment")
	}

	var when time.Time
	if in.AppointmentDate != nil {
		parsed, ok := parseDate(*in.AppointmentDate)
		if !ok {
			return Details{}, fault.InvalidValue("appointmentDate", "")
		}
		if !parsed.After(s.now()) {
			return Details{}, fault.InvalidValue("appointmentDate", "must be future")
		}
		when = parsed
	}

	if in.PetID != nil {
		ok, err := s.repo.PetExists(ctx, *in.PetID)
		if err != nil {
			return Details{}, err
		}
		if !ok {
			return Details{}, fault.NotFound("Pet")
		}
	}
	if in.ServiceID != nil {
		ok, err := s.repo.ServiceExists(ctx, *in.ServiceID)
		if err != nil {
			return Details{}, err
		}
		if !ok {
			return Details{}, fault.NotFound("Service")
		}
	}
	if in.VeterinarianID != nil {
		ok, err := s.repo.VeterinarianExists(ctx, *in.VeterinarianID)
		if err != nil {
			return Details{}, err
		}
		if !ok {
			return Details{}, fault.NotFound("Veterinarian")
		}
	}

	var d patch.Directive
	if in.PetID != nil {
		d.Set("petId", *in.PetID)
	}
	if in.ServiceID != nil {
		d.Set("serviceId", *in.ServiceID)
	}
	if in.VeterinarianID != nil {
		d.Set("veterinarianId", *in.VeterinarianID)
	}
	if in.AppointmentDate != nil {
		d.Set("appointmentDate", when)
	}
	if in.Notes != nil {
		d.Set("notes", *in.Notes)
	}

	if d.Empty() {
		return s.repo.GetByID(ctx, id)
	}

	if err := s.repo.UpdatePartial(ctx, id, &d, s.now()); err != nil {
		return Details{}, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	ok, err := s.repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return fault.NotFound("Appointment")
	}
	return s.repo.Delete(ctx, id)
}

// checkReferences corre los chequeos secuencialmente para conservar la
// prioridad de error pet -> service -> veterinarian cuando faltan varias
// referencias a la vez. Son solo lecturas: ningún write ocurre acá.
func (s *Service) checkReferences(ctx context.Context, petID, serviceID, vetID string) error {
	ok, err := s.repo.PetExists(ctx, petID)
	if err != nil {
		return err
	}
	if !ok {
		return fault.NotFound("Pet")
	}

	ok, err = s.repo.ServiceExists(ctx, serviceID)
	if err != nil {
		return err
	}
	if !ok {
		return fault.NotFound("Service")
	}

	ok, err = s.repo.VeterinarianExists(ctx, vetID)
	if err != nil {
		return err
	}
	if !ok {
		return fault.NotFound("Veterinarian")
	}

	return nil
}
