package appointments

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/Dev-Icaro/pet-impacta/internal/domain/fault"
	"github.com/Dev-Icaro/pet-impacta/internal/domain/patch"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID   map[string]Appointment
	nextID int

	pets     map[string]bool
	services map[string]bool
	vets     map[string]bool

	writes int // escrituras reales (Create/UpdatePartial/Delete)
}

func newTestRepo() *testRepo {
	return &testRepo{
		byID:     map[string]Appointment{},
		pets:     map[string]bool{"pet-1": true},
		services: map[string]bool{"svc-1": true},
		vets:     map[string]bool{"vet-1": true},
	}
}

func (r *testRepo) Create(ctx context.Context, a Appointment) (string, error) {
	r.nextID++
	a.ID = fmt.Sprintf("appt-%d", r.nextID)
	r.byID[a.ID] = a
	r.writes++
	return a.ID, nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Details, error) {
	a, ok := r.byID[id]
	if !ok {
		return Details{}, fault.NotFound("Appointment")
	}
	return Details{Appointment: a, PetName: "Milo", ServiceName: "Bath", VeterinarianName: "Dr. Who", ServicePrice: 25}, nil
}

func (r *testRepo) List(ctx context.Context) ([]Details, error) {
	out := make([]Details, 0, len(r.byID))
	for _, a := range r.byID {
		out = append(out, Details{Appointment: a})
	}
	return out, nil
}

func (r *testRepo) Count(ctx context.Context) (int, error) {
	return len(r.byID), nil
}

func (r *testRepo) UpdatePartial(ctx context.Context, id string, d *patch.Directive, updatedAt time.Time) error {
	a, ok := r.byID[id]
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
		default:
			return fmt.Errorf("repo: unknown field %q", as.Field)
		}
	}
	a.UpdatedAt = updatedAt
	r.byID[id] = a
	r.writes++
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return fault.NotFound("Appointment")
	}
	delete(r.byID, id)
	r.writes++
	return nil
}

func (r *testRepo) Exists(ctx context.Context, id string) (bool, error) {
	_, ok := r.byID[id]
	return ok, nil
}

func (r *testRepo) PetExists(ctx context.Context, id string) (bool, error) {
	return r.pets[id], nil
}

func (r *testRepo) ServiceExists(ctx context.Context, id string) (bool, error) {
	return r.services[id], nil
}

func (r *testRepo) VeterinarianExists(ctx context.Context, id string) (bool, error) {
	return r.vets[id], nil
}

// -------------------------
// Helpers
// -------------------------

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func newTestService(repo *testRepo) *Service {
	svc := NewService(repo)
	svc.now = func() time.Time { return testNow }
	return svc
}

func validInput() CreateInput {
	return CreateInput{
		PetID:           "pet-1",
		ServiceID:       "svc-1",
		VeterinarianID:  "vet-1",
		AppointmentDate: "2026-03-15T10:00:00Z",
		Notes:           "first visit",
	}
}

func strptr(s string) *string { return &s }

// -------------------------
// Create
// -------------------------

func TestService_Create_Valid(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo)

	d, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if d.PetID != "pet-1" || d.ServiceID != "svc-1" || d.VeterinarianID != "vet-1" {
		t.Fatalf("expected references preserved, got %#v", d.Appointment)
	}
	want := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	if !d.AppointmentDate.Equal(want) {
		t.Fatalf("expected appointment date %v, got %v", want, d.AppointmentDate)
	}
	if d.CreatedAt != testNow || d.UpdatedAt != testNow {
		t.Fatalf("expected CreatedAt/UpdatedAt set to now")
	}
}

func TestService_Create_MissingFields_InOrder(t *testing.T) {
	cases := []struct {
		name  string
		mut   func(*CreateInput)
		field string
	}{
		{"petId", func(in *CreateInput) { in.PetID = "" }, "petId"},
		{"serviceId", func(in *CreateInput) { in.ServiceID = " " }, "serviceId"},
		{"veterinarianId", func(in *CreateInput) { in.VeterinarianID = "" }, "veterinarianId"},
		{"appointmentDate", func(in *CreateInput) { in.AppointmentDate = "" }, "appointmentDate"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newTestRepo()
			svc := newTestService(repo)

			in := validInput()
			tc.mut(&in)

			_, err := svc.Create(context.Background(), in)
			var mf fault.MissingFieldError
			if !errors.As(err, &mf) {
				t.Fatalf("expected MissingFieldError, got %v", err)
			}
			if mf.Field != tc.field {
				t.Fatalf("expected field %q, got %q", tc.field, mf.Field)
			}
			if repo.writes != 0 {
				t.Fatalf("expected no writes, got %d", repo.writes)
			}
		})
	}
}

func TestService_Create_MissingField_WinsOverMultiple(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo)

	// petId vacío gana aunque también falten los demás
	_, err := svc.Create(context.Background(), CreateInput{})
	var mf fault.MissingFieldError
	if !errors.As(err, &mf) {
		t.Fatalf("expected MissingFieldError, got %v", err)
	}
	if mf.Field != "petId" {
		t.Fatalf("expected petId reported first, got %q", mf.Field)
	}
}

func TestService_Create_UnparsableDate(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo)

	in := validInput()
	in.AppointmentDate = "not-a-date"

	_, err := svc.Create(context.Background(), in)
	var iv fault.InvalidValueError
	if !errors.As(err, &iv) {
		t.Fatalf("expected InvalidValueError, got %v", err)
	}
	if iv.Field != "appointmentDate" {
		t.Fatalf("expected appointmentDate, got %q", iv.Field)
	}
	if repo.writes != 0 {
		t.Fatalf("expected no writes on invalid date")
	}
}

func TestService_Create_PastOrPresentDate(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo)

	for _, date := range []string{
		"2026-03-10T11:59:59Z", // pasado
		"2026-03-10T12:00:00Z", // exactamente ahora: también rechazado
	} {
		in := validInput()
		in.AppointmentDate = date

		_, err := svc.Create(context.Background(), in)
		var iv fault.InvalidValueError
		if !errors.As(err, &iv) {
			t.Fatalf("date %s: expected InvalidValueError, got %v", date, err)
		}
	}
	if repo.writes != 0 {
		t.Fatalf("expected no writes")
	}
}

func TestService_Create_DateWithoutZone(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo)

	in := validInput()
	in.AppointmentDate = "2026-03-15 10:00:00"

	if _, err := svc.Create(context.Background(), in); err != nil {
		t.Fatalf("expected layout without zone accepted, got %v", err)
	}
}

func TestService_Create_ReferencePriority(t *testing.T) {
	// Con las tres referencias inválidas, el error reporta pet primero;
	// arreglada la mascota, reporta service; y así.
	repo := newTestRepo()
	svc := newTestService(repo)

	in := validInput()
	in.PetID = "nope"
	in.ServiceID = "nope"
	in.VeterinarianID = "nope"

	steps := []struct {
		entity string
		fix    func(*CreateInput)
	}{
		{"Pet", func(i *CreateInput) { i.PetID = "pet-1" }},
		{"Service", func(i *CreateInput) { i.ServiceID = "svc-1" }},
		{"Veterinarian", func(i *CreateInput) { i.VeterinarianID = "vet-1" }},
	}

	for _, st := range steps {
		_, err := svc.Create(context.Background(), in)
		var nf fault.NotFoundError
		if !errors.As(err, &nf) {
			t.Fatalf("expected NotFoundError, got %v", err)
		}
		if nf.Entity != st.entity {
			t.Fatalf("expected %s reported, got %s", st.entity, nf.Entity)
		}
		st.fix(&in)
	}

	if _, err := svc.Create(context.Background(), in); err != nil {
		t.Fatalf("expected success after fixing refs, got %v", err)
	}
	if repo.writes != 1 {
		t.Fatalf("expected exactly 1 write, got %d", repo.writes)
	}
}

// -------------------------
// Update
// -------------------------

func seedAppointment(t *testing.T, repo *testRepo, svc *Service) string {
	t.Helper()
	d, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("seed Create error: %v", err)
	}
	return d.ID
}

func TestService_Update_UnknownID(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo)

	_, err := svc.Update(context.Background(), "ghost", UpdateInput{Notes: strptr("x")})
	var nf fault.NotFoundError
	if !errors.As(err, &nf) || nf.Entity != "Appointment" {
		t.Fatalf("expected Appointment not found, got %v", err)
	}
}

func TestService_Update_EmptyBody_IsReadThrough(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo)
	id := seedAppointment(t, repo, svc)

	before := repo.byID[id]
	writesBefore := repo.writes

	d, err := svc.Update(context.Background(), id, UpdateInput{})
	if err != nil {
		t.Fatalf("empty update returned error: %v", err)
	}
	if repo.writes != writesBefore {
		t.Fatalf("empty update must not write, writes went %d -> %d", writesBefore, repo.writes)
	}
	if !d.UpdatedAt.Equal(before.UpdatedAt) {
		t.Fatalf("empty update must not bump UpdatedAt")
	}
}

func TestService_Update_NotesOnly_LeavesRestIntact(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo)
	id := seedAppointment(t, repo, svc)

	before := repo.byID[id]
	later := testNow.Add(5 * time.Minute)
	svc.now = func() time.Time { return later }

	d, err := svc.Update(context.Background(), id, UpdateInput{Notes: strptr("rescheduling soon")})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if d.Notes != "rescheduling soon" {
		t.Fatalf("expected notes updated, got %q", d.Notes)
	}
	if d.PetID != before.PetID || d.ServiceID != before.ServiceID || d.VeterinarianID != before.VeterinarianID {
		t.Fatalf("expected references untouched")
	}
	if !d.AppointmentDate.Equal(before.AppointmentDate) {
		t.Fatalf("expected date untouched")
	}
	if !d.UpdatedAt.Equal(later) {
		t.Fatalf("expected UpdatedAt advanced to %v, got %v", later, d.UpdatedAt)
	}
}

func TestService_Update_EmptyNotes_IsPresent(t *testing.T) {
	// "notes": "" presente borra las notas; presencia != truthiness.
	repo := newTestRepo()
	svc := newTestService(repo)
	id := seedAppointment(t, repo, svc)

	d, err := svc.Update(context.Background(), id, UpdateInput{Notes: strptr("")})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if d.Notes != "" {
		t.Fatalf("expected notes cleared, got %q", d.Notes)
	}
	if !d.UpdatedAt.Equal(testNow) {
		t.Fatalf("expected UpdatedAt bumped on real write")
	}
}

func TestService_Update_InvalidDate_Rejected(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo)
	id := seedAppointment(t, repo, svc)
	writesBefore := repo.writes

	for _, date := range []string{"nope", "2020-01-01T00:00:00Z"} {
		_, err := svc.Update(context.Background(), id, UpdateInput{AppointmentDate: strptr(date)})
		var iv fault.InvalidValueError
		if !errors.As(err, &iv) {
			t.Fatalf("date %s: expected InvalidValueError, got %v", date, err)
		}
	}
	if repo.writes != writesBefore {
		t.Fatalf("invalid update must not write")
	}
}

func TestService_Update_UnknownReference_Rejected(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo)
	id := seedAppointment(t, repo, svc)

	_, err := svc.Update(context.Background(), id, UpdateInput{PetID: strptr("ghost")})
	var nf fault.NotFoundError
	if !errors.As(err, &nf) || nf.Entity != "Pet" {
		t.Fatalf("expected Pet not found, got %v", err)
	}
}

// -------------------------
// Delete / List
// -------------------------

func TestService_Delete(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo)
	id := seedAppointment(t, repo, svc)

	if err := svc.Delete(context.Background(), id); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	err := svc.Delete(context.Background(), id)
	var nf fault.NotFoundError
	if !errors.As(err, &nf) || nf.Entity != "Appointment" {
		t.Fatalf("expected Appointment not found on second delete, got %v", err)
	}
}

func TestService_List_ReturnsTotal(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo)
	seedAppointment(t, repo, svc)

	in := validInput()
	in.AppointmentDate = "2026-04-01T09:00:00Z"
	if _, err := svc.Create(context.Background(), in); err != nil {
		t.Fatalf("second Create error: %v", err)
	}

	items, total, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(items) != 2 || total != 2 {
		t.Fatalf("expected 2 items / total 2, got %d / %d", len(items), total)
	}
}
