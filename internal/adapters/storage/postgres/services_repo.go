package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/Dev-Icaro/pet-impacta/internal/domain/fault"
	"github.com/Dev-Icaro/pet-impacta/internal/domain/patch"
	"github.com/Dev-Icaro/pet-impacta/internal/domain/services"
)

type ServicesRepo struct {
	db *sql.DB
}

func NewServicesRepo(db *sql.DB) *ServicesRepo {
	return &ServicesRepo{db: db}
}

func (r *ServicesRepo) Create(ctx context.Context, cs services.ClinicService) (string, error) {
	var id string
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO services (
			name, description, price,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5)
		RETURNING id
	`,
		cs.Name,
		cs.Description,
		cs.Price,
		cs.CreatedAt,
		cs.UpdatedAt,
	).Scan(&id)
	return id, err
}

func (r *ServicesRepo) GetByID(ctx context.Context, id string) (services.ClinicService, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, description, price, created_at, updated_at
		FROM services
		WHERE id = $1
	`, id)

	var cs services.ClinicService
	if err := row.Scan(
		&cs.ID,
		&cs.Name,
		&cs.Description,
		&cs.Price,
		&cs.CreatedAt,
		&cs.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return services.ClinicService{}, fault.NotFound("Service")
		}
		return services.ClinicService{}, err
	}

	return cs, nil
}

func (r *ServicesRepo) List(ctx context.Context) ([]services.ClinicService, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, description, price, created_at, updated_at
		FROM services
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]services.ClinicService, 0)
	for rows.Next() {
		var cs services.ClinicService
		if err := rows.Scan(
			&cs.ID,
			&cs.Name,
			&cs.Description,
			&cs.Price,
			&cs.CreatedAt,
			&cs.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, cs)
	}

	return out, rows.Err()
}

func (r *ServicesRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM services`).Scan(&n)
	return n, err
}

func (r *ServicesRepo) UpdatePartial(ctx context.Context, id string, d *patch.Directive, updatedAt time.Time) error {
	q, args := buildPartialUpdate("services", d, id, updatedAt)
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fault.NotFound("Service")
	}
	return nil
}

func (r *ServicesRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fault.NotFound("Service")
	}
	return nil
}

func (r *ServicesRepo) Exists(ctx context.Context, id string) (bool, error) {
	return existsQuery(ctx, r.db, `SELECT 1 FROM services WHERE id = $1 LIMIT 1`, id)
}

func (r *ServicesRepo) HasAppointments(ctx context.Context, id string) (bool, error) {
	return existsQuery(ctx, r.db, `SELECT 1 FROM appointments WHERE service_id = $1 LIMIT 1`, id)
}
