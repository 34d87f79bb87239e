package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/Dev-Icaro/pet-impacta/internal/domain/fault"
	"github.com/Dev-Icaro/pet-impacta/internal/domain/patch"
	"github.com/Dev-Icaro/pet-impacta/internal/domain/pets"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

// Create inserta y devuelve el id generado por la base (gen_random_uuid).
func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) (string, error) {
	var id string
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO pets (
			name, species, breed, age,
			owner_name, owner_phone, owner_email,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING id
	`,
		p.Name,
		p.Species,
		p.Breed,
		p.Age,
		p.OwnerName,
		p.OwnerPhone,
		p.OwnerEmail,
		p.CreatedAt,
		p.UpdatedAt,
	).Scan(&id)
	return id, err
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, name, species, breed, age,
			owner_name, owner_phone, owner_email,
			created_at, updated_at
		FROM pets
		WHERE id = $1
	`, id)

	var p pets.Pet
	if err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Species,
		&p.Breed,
		&p.Age,
		&p.OwnerName,
		&p.OwnerPhone,
		&p.OwnerEmail,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return pets.Pet{}, fault.NotFound("Pet")
		}
		return pets.Pet{}, err
	}

	return p, nil
}

func (r *PetsRepo) List(ctx context.Context) ([]pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, name, species, breed, age,
			owner_name, owner_phone, owner_email,
			created_at, updated_at
		FROM pets
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		var p pets.Pet
		if err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Species,
			&p.Breed,
			&p.Age,
			&p.OwnerName,
			&p.OwnerPhone,
			&p.OwnerEmail,
			&p.CreatedAt,
			&p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, rows.Err()
}

func (r *PetsRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM pets`).Scan(&n)
	return n, err
}

func (r *PetsRepo) UpdatePartial(ctx context.Context, id string, d *patch.Directive, updatedAt time.Time) error {
	q, args := buildPartialUpdate("pets", d, id, updatedAt)
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fault.NotFound("Pet")
	}
	return nil
}

func (r *PetsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM pets WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fault.NotFound("Pet")
	}
	return nil
}

func (r *PetsRepo) Exists(ctx context.Context, id string) (bool, error) {
	return existsQuery(ctx, r.db, `SELECT 1 FROM pets WHERE id = $1 LIMIT 1`, id)
}

func (r *PetsRepo) HasAppointments(ctx context.Context, id string) (bool, error) {
	return existsQuery(ctx, r.db, `SELECT 1 FROM appointments WHERE pet_id = $1 LIMIT 1`, id)
}

func existsQuery(ctx context.Context, db *sql.DB, q string, args ...any) (bool, error) {
	var one int
	err := db.QueryRowContext(ctx, q, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
