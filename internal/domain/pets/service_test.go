package pets

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
	byID     map[string]Pet
	nextID   int
	withAppt map[string]bool
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Pet{}, withAppt: map[string]bool{}}
}

func (r *testRepo) Create(ctx context.Context, p Pet) (string, error) {
	r.nextID++
	p.ID = fmt.Sprintf("pet-%d", r.nextID)
	r.byID[p.ID] = p
	return p.ID, nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Pet, error) {
	p, ok := r.byID[id]
	if !ok {
		return Pet{}, fault.NotFound("Pet")
	}
	return p, nil
}

func (r *testRepo) List(ctx context.Context) ([]Pet, error) {
	out := make([]Pet, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}
	return out, nil
}

func (r *testRepo) Count(ctx context.Context) (int, error) {
	return len(r.byID), nil
}

func (r *testRepo) UpdatePartial(ctx context.Context, id string, d *patch.Directive, updatedAt time.Time) error {
	p, ok := r.byID[id]
	if !ok {
		return fault.NotFound("Pet")
	}
	for _, as := range d.Assignments() {
		switch as.Field {
		case "name":
			p.Name = as.Value.(string)
		case "species":
			p.Species = as.Value.(string)
		case "breed":
			p.Breed = as.Value.(string)
		case "age":
			p.Age = as.Value.(int)
		case "ownerName":
			p.OwnerName = as.Value.(string)
		case "ownerPhone":
			p.OwnerPhone = as.Value.(string)
		case "ownerEmail":
			p.OwnerEmail = as.Value.(string)
		default:
			return fmt.Errorf("repo: unknown field %q", as.Field)
		}
	}
	p.UpdatedAt = updatedAt
	r.byID[id] = p
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return fault.NotFound("Pet")
	}
	delete(r.byID, id)
	return nil
}

func (r *testRepo) Exists(ctx context.Context, id string) (bool, error) {
	_, ok := r.byID[id]
	return ok, nil
}

func (r *testRepo) HasAppointments(ctx context.Context, id string) (bool, error) {
	return r.withAppt[id], nil
}

// -------------------------
// Tests
// -------------------------

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func newTestService(repo *testRepo) *Service {
	svc := NewService(repo)
	svc.now = func() time.Time { return testNow }
	return svc
}

func validInput() CreateInput {
	return CreateInput{
		Name:      "Milo",
		Species:   "dog",
		Breed:     "mixed",
		Age:       3,
		OwnerName: "Ana",
	}
}

func TestService_Create_Valid(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo)

	p, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if p.ID == "" {
		t.Fatalf("expected ID assigned by repo")
	}
	if p.CreatedAt != testNow || p.UpdatedAt != testNow {
		t.Fatalf("expected timestamps set to now")
	}
}

func TestService_Create_MissingFields(t *testing.T) {
	cases := []struct {
		name  string
		mut   func(*CreateInput)
		field string
	}{
		{"name", func(in *CreateInput) { in.Name = "" }, "name"},
		{"species", func(in *CreateInput) { in.Species = "  " }, "species"},
		{"ownerName", func(in *CreateInput) { in.OwnerName = "" }, "ownerName"},
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
		})
	}
}

func TestService_Create_NegativeAge(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo)

	in := validInput()
	in.Age = -1

	_, err := svc.Create(context.Background(), in)
	var iv fault.InvalidValueError
	if !errors.As(err, &iv) || iv.Field != "age" {
		t.Fatalf("expected age invalid, got %v", err)
	}
}

func TestService_Create_AgeZeroIsValid(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo)

	in := validInput()
	in.Age = 0

	if _, err := svc.Create(context.Background(), in); err != nil {
		t.Fatalf("age 0 should be valid, got %v", err)
	}
}

func TestService_Update_PartialFields(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo)

	p, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	later := testNow.Add(time.Hour)
	svc.now = func() time.Time { return later }

	name := "Milo Jr."
	age := 4
	got, err := svc.Update(context.Background(), p.ID, UpdateInput{Name: &name, Age: &age})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if got.Name != "Milo Jr." || got.Age != 4 {
		t.Fatalf("expected fields updated, got %#v", got)
	}
	if got.Species != "dog" || got.OwnerName != "Ana" {
		t.Fatalf("expected untouched fields preserved")
	}
	if !got.UpdatedAt.Equal(later) {
		t.Fatalf("expected UpdatedAt advanced")
	}
}

func TestService_Update_EmptyBody_NoWrite(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo)

	p, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	svc.now = func() time.Time { return testNow.Add(time.Hour) }

	got, err := svc.Update(context.Background(), p.ID, UpdateInput{})
	if err != nil {
		t.Fatalf("empty update returned error: %v", err)
	}
	if !got.UpdatedAt.Equal(testNow) {
		t.Fatalf("empty update must not bump UpdatedAt")
	}
}

func TestService_Update_UnknownID(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo)

	name := "x"
	_, err := svc.Update(context.Background(), "ghost", UpdateInput{Name: &name})
	var nf fault.NotFoundError
	if !errors.As(err, &nf) || nf.Entity != "Pet" {
		t.Fatalf("expected Pet not found, got %v", err)
	}
}

func TestService_Delete_RestrictedWhenReferenced(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo)

	p, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	repo.withAppt[p.ID] = true

	err = svc.Delete(context.Background(), p.ID)
	var cf fault.ConflictError
	if !errors.As(err, &cf) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
	if _, ok := repo.byID[p.ID]; !ok {
		t.Fatalf("pet must survive a restricted delete")
	}

	repo.withAppt[p.ID] = false
	if err := svc.Delete(context.Background(), p.ID); err != nil {
		t.Fatalf("Delete after unreferencing returned error: %v", err)
	}
}
