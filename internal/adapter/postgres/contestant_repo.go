package postgres

import (
	"context"
	"database/sql"
	"errors"

	"slimdown/internal/domain"
)

// Add inserts a contestant. Enrollment order is the id sequence.
func (d *DB) Add(ctx context.Context, c domain.Contestant) error {
	_, err := d.sql.ExecContext(ctx,
		"INSERT INTO contestants(name, date_of_birth, starting_weight, current_weight, created_at) VALUES($1, $2, $3, $4, $5);",
		c.Name, c.DateOfBirth, c.StartingWeight, c.CurrentWeight, c.CreatedAt.UTC(),
	)
	return err
}

// Get retrieves a contestant by name.
func (d *DB) Get(ctx context.Context, name string) (*domain.Contestant, error) {
	row := d.sql.QueryRowContext(ctx,
		"SELECT name, date_of_birth, starting_weight, current_weight, created_at FROM contestants WHERE name = $1;",
		name,
	)

	var c domain.Contestant
	if err := row.Scan(&c.Name, &c.DateOfBirth, &c.StartingWeight, &c.CurrentWeight, &c.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

// List returns all contestants in enrollment order.
func (d *DB) List(ctx context.Context) ([]domain.Contestant, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT name, date_of_birth, starting_weight, current_weight, created_at FROM contestants ORDER BY id;")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Contestant
	for rows.Next() {
		var c domain.Contestant
		if err := rows.Scan(&c.Name, &c.DateOfBirth, &c.StartingWeight, &c.CurrentWeight, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Update rewrites the record with the same name.
func (d *DB) Update(ctx context.Context, c domain.Contestant) error {
	res, err := d.sql.ExecContext(ctx,
		"UPDATE contestants SET date_of_birth=$2, starting_weight=$3, current_weight=$4 WHERE name=$1;",
		c.Name, c.DateOfBirth, c.StartingWeight, c.CurrentWeight,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return errors.New("contestant not found")
	}
	return nil
}

// Remove deletes a contestant by name.
func (d *DB) Remove(ctx context.Context, name string) error {
	res, err := d.sql.ExecContext(ctx, "DELETE FROM contestants WHERE name=$1;", name)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return errors.New("contestant not found")
	}
	return nil
}
