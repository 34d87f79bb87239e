package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/Dev-Icaro/pet-impacta/internal/domain/fault"
	"github.com/Dev-Icaro/pet-impacta/internal/domain/patch"
	"github.com/Dev-Icaro/pet-impacta/internal/domain/veterinarians"
)

type VeterinariansRepo struct {
	db *sql.DB
}

func NewVeterinariansRepo(db *sql.DB) *VeterinariansRepo {
	return &VeterinariansRepo{db: db}
}

func (r *VeterinariansRepo) Create(ctx context.Context, v veterinarians.Veterinarian) (string, error) {
	var id string
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO veterinarians (
			name, license_number, phone, email,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING id
	`,
		v.Name,
		v.LicenseNumber,
		v.Phone,
		v.Email,
		v.CreatedAt,
		v.UpdatedAt,
	).Scan(&id)
	return id, err
}

func (r *VeterinariansRepo) GetByID(ctx context.Context, id string) (veterinarians.Veterinarian, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, name, license_number, phone, email,
			created_at, updated_at
		FROM veterinarians
		WHERE id = $1
	`, id)

	var v veterinarians.Veterinarian
	if err := row.Scan(
		&v.ID,
		&v.Name,
		&v.LicenseNumber,
		&v.Phone,
		&v.Email,
		&v.CreatedAt,
		&v.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return veterinarians.Veterinarian{}, fault.NotFound("Veterinarian")
		}
		return veterinarians.Veterinarian{}, err
	}

	return v, nil
}

func (r *VeterinariansRepo) List(ctx context.Context) ([]veterinarians.Veterinarian, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, name, license_number, phone, email,
			created_at, updated_at
		FROM veterinarians
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]veterinarians.Veterinarian, 0)
	for rows.Next() {
		var v veterinarians.Veterinarian
		if err := rows.Scan(
			&v.ID,
			&v.Name,
			&v.LicenseNumber,
			&v.Phone,
			&v.Email,
			&v.CreatedAt,
			&v.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	return out, rows.Err()
}

func (r *VeterinariansRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM veterinarians`).Scan(&n)
	return n, err
}

func (r *VeterinariansRepo) UpdatePartial(ctx context.Context, id string, d *patch.Directive, updatedAt time.Time) error {
	q, args := buildPartialUpdate("veterinarians", d, id, updatedAt)
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fault.NotFound("Veterinarian")
	}
	return nil
}

func (r *VeterinariansRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM veterinarians WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fault.NotFound("Veterinarian")
	}
	return nil
}

func (r *VeterinariansRepo) Exists(ctx context.Context, id string) (bool, error) {
	return existsQuery(ctx, r.db, `SELECT 1 FROM veterinarians WHERE id = $1 LIMIT 1`, id)
}

func (r *VeterinariansRepo) HasAppointments(ctx context.Context, id string) (bool, error) {
	return existsQuery(ctx, r.db, `SELECT 1 FROM appointments WHERE veterinarian_id = $1 LIMIT 1`, id)
}
