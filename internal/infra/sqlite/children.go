package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/choreboard/choreboard/internal/domain"
)

// ─── Households ─────────────────────────────────────────────────────────────

// AddHousehold inserts a household. A missing ID is generated.
func (d *DB) AddHousehold(ctx context.Context, h domain.Household) (domain.Household, error) {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	if h.CreatedAt.IsZero() {
		h.CreatedAt = time.Now()
	}
	_, err := d.db.ExecContext(ctx,
		`INSERT INTO households (id, name, created_at) VALUES (?, ?, ?)`,
		h.ID, h.Name, h.CreatedAt.Unix())
	if err != nil {
		return domain.Household{}, fmt.Errorf("insert household: %w", err)
	}
	return h, nil
}

// Household loads one household by ID.
func (d *DB) Household(ctx context.Context, householdID string) (domain.Household, error) {
	var h domain.Household
	var createdAt int64
	err := d.db.QueryRowContext(ctx,
		`SELECT id, name, created_at FROM households WHERE id = ?`, householdID).
		Scan(&h.ID, &h.Name, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Household{}, domain.ErrHouseholdNotFound
	}
	if err != nil {
		return domain.Household{}, fmt.Errorf("select household: %w", err)
	}
	h.CreatedAt = time.Unix(createdAt, 0)
	return h, nil
}

// Households lists every household, oldest first.
func (d *DB) Households(ctx context.Context) ([]domain.Household, error) {
	rows, err := d.db.QueryContext(ctx,
		`SELECT id, name, created_at FROM households ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("select households: %w", err)
	}
	defer rows.Close()

	out := []domain.Household{}
	for rows.Next() {
		var h domain.Household
		var createdAt int64
		if err := rows.Scan(&h.ID, &h.Name, &createdAt); err != nil {
			return nil, fmt.Errorf("scan household: %w", err)
		}
		h.CreatedAt = time.Unix(createdAt, 0)
		out = append(out, h)
	}
	return out, rows.Err()
}

// ─── Children ───────────────────────────────────────────────────────────────

// AddChild inserts a child profile. A missing ID is generated.
func (d *DB) AddChild(ctx context.Context, c domain.ChildProfile) (domain.ChildProfile, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	_, err := d.db.ExecContext(ctx,
		`INSERT INTO children (id, household_id, name, current_streak, total_points, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		c.ID, c.HouseholdID, c.Name, c.CurrentStreak, c.TotalPoints, c.CreatedAt.Unix())
	if err != nil {
		return domain.ChildProfile{}, fmt.Errorf("insert child: %w", err)
	}
	return c, nil
}

// UpdateChildProgress sets the profile-owned counters for a child.
func (d *DB) UpdateChildProgress(ctx context.Context, childID string, currentStreak, totalPoints int) error {
	res, err := d.db.ExecContext(ctx,
		`UPDATE children SET current_streak = ?, total_points = ? WHERE id = ?`,
		currentStreak, totalPoints, childID)
	if err != nil {
		return fmt.Errorf("update child progress: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrChildNotFound
	}
	return nil
}

// Child loads one child profile by ID.
func (d *DB) Child(ctx context.Context, childID string) (domain.ChildProfile, error) {
	var c domain.ChildProfile
	var createdAt int64
	err := d.db.QueryRowContext(ctx,
		`SELECT id, household_id, name, current_streak, total_points, created_at
		 FROM children WHERE id = ?`, childID).
		Scan(&c.ID, &c.HouseholdID, &c.Name, &c.CurrentStreak, &c.TotalPoints, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ChildProfile{}, domain.ErrChildNotFound
	}
	if err != nil {
		return domain.ChildProfile{}, fmt.Errorf("select child: %w", err)
	}
	c.CreatedAt = time.Unix(createdAt, 0)
	return c, nil
}

// Children lists a household's children in stable household order
// (oldest profile first). The composer's tie-breaks depend on this
// ordering being deterministic.
func (d *DB) Children(ctx context.Context, householdID string) ([]domain.ChildProfile, error) {
	rows, err := d.db.QueryContext(ctx,
		`SELECT id, household_id, name, current_streak, total_points, created_at
		 FROM children WHERE household_id = ? ORDER BY created_at, id`, householdID)
	if err != nil {
		return nil, fmt.Errorf("select children: %w", err)
	}
	defer rows.Close()

	out := []domain.ChildProfile{}
	for rows.Next() {
		var c domain.ChildProfile
		var createdAt int64
		if err := rows.Scan(&c.ID, &c.HouseholdID, &c.Name, &c.CurrentStreak, &c.TotalPoints, &createdAt); err != nil {
			return nil, fmt.Errorf("scan child: %w", err)
		}
		c.CreatedAt = time.Unix(createdAt, 0)
		out = append(out, c)
	}
	return out, rows.Err()
}
