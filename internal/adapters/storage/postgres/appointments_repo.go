package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/Dev-Icaro/pet-impacta/internal/domain/appointments"
	"github.com/Dev-Icaro/pet-impacta/internal/domain/fault"
	"github.com/Dev-Icaro/pet-impacta/internal/domain/patch"
)

type AppointmentsRepo struct {
	db *sql.DB
}

func NewAppointmentsRepo(db *sql.DB) *AppointmentsRepo {
	return &AppointmentsRepo{db: db}
}

// detailsQuery trae la cita más los campos de display por join.
// Los alias en snake_case siguen la convención de columnas; el mapeo a
// camelCase queda en los structs de respuesta.
const detailsQuery = `
	SELECT
		a.id,
		a.pet_id,
		a.service_id,
		a.veterinarian_id,
		a.appointment_date,
		a.notes,
		a.created_at,
		a.updated_at,
		p.name AS pet_name,
		s.name AS service_name,
		s.price AS service_price,
		v.name AS veterinarian_name
	FROM appointments a
	INNER JOIN pets p ON a.pet_id = p.id
	INNER JOIN services s ON a.service_id = s.id
	INNER JOIN veterinarians v ON a.veterinarian_id = v.id
`

func (r *AppointmentsRepo) Create(ctx context.Context, a appointments.Appointment) (string, error) {
	var id string
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO appointments (
			pet_id, service_id, veterinarian_id,
			appointment_date, notes,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING id
	`,
		a.PetID,
		a.ServiceID,
		a.VeterinarianID,
		a.AppointmentDate,
		a.Notes,
		a.CreatedAt,
		a.UpdatedAt,
	).Scan(&id)
	return id, err
}

func (r *AppointmentsRepo) GetByID(ctx context.Context, id string) (appointments.Details, error) {
	row := r.db.QueryRowContext(ctx, detailsQuery+` WHERE a.id = $1`, id)

	d, err := scanDetails(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return appointments.Details{}, fault.NotFound("Appointment")
		}
		return appointments.Details{}, err
	}
	return d, nil
}

func (r *AppointmentsRepo) List(ctx context.Context) ([]appointments.Details, error) {
	rows, err := r.db.QueryContext(ctx, detailsQuery+` ORDER BY a.appointment_date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]appointments.Details, 0)
	for rows.Next() {
		d, err := scanDetails(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}

	return out, rows.Err()
}

func (r *AppointmentsRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM appointments`).Scan(&n)
	return n, err
}

// UpdatePartial ejecuta la sentencia dinámica de la directiva. Cero filas
// afectadas significa que la cita desapareció entre la validación y la
// ejecución: se reporta como NotFound, nunca como éxito silencioso.
func (r *AppointmentsRepo) UpdatePartial(ctx context.Context, id string, d *patch.Directive, updatedAt time.Time) error {
	q, args := buildPartialUpdate("appointments", d, id, updatedAt)
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fault.NotFound("Appointment")
	}
	return nil
}

func (r *AppointmentsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fault.NotFound("Appointment")
	}
	return nil
}

func (r *AppointmentsRepo) Exists(ctx context.Context, id string) (bool, error) {
	return existsQuery(ctx, r.db, `SELECT 1 FROM appointments WHERE id = $1 LIMIT 1`, id)
}

func (r *AppointmentsRepo) PetExists(ctx context.Context, id string) (bool, error) {
	return existsQuery(ctx, r.db, `SELECT 1 FROM pets WHERE id = $1 LIMIT 1`, id)
}

func (r *AppointmentsRepo) ServiceExists(ctx context.Context, id string) (bool, error) {
	return existsQuery(ctx, r.db, `SELECT 1 FROM services WHERE id = $1 LIMIT 1`, id)
}

func (r *AppointmentsRepo) VeterinarianExists(ctx context.Context, id string) (bool, error) {
	return existsQuery(ctx, r.db, `SELECT 1 FROM veterinarians WHERE id = $1 LIMIT 1`, id)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDetails(row rowScanner) (appointments.Details, error) {
	var d appointments.Details
	err := row.Scan(
		&d.ID,
		&d.PetID,
		&d.ServiceID,
		&d.VeterinarianID,
		&d.AppointmentDate,
		&d.Notes,
		&d.CreatedAt,
		&d.UpdatedAt,
		&d.PetName,
		&d.ServiceName,
		&d.ServicePrice,
		&d.VeterinarianName,
	)
	return d, err
}
