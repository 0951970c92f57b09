package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"shahabsang/internal/model"
)

const meteoriteColumns = "id, name, type, location, weight, price, description, image_url, created_at"

// Filter holds the optional constraints for a catalog listing.
// Zero-valued fields contribute no predicate. MinPrice and MaxPrice are kept
// as the raw query strings and bound as parameters; SQLite's numeric affinity
// on the price column handles the comparison.
type Filter struct {
	Search   string
	Type     string
	Location string
	MinPrice string
	MaxPrice string
}

// clauses returns the WHERE predicates and their bound arguments, one pair
// per present filter field, to be joined with AND. Arguments are always
// bound, never interpolated.
func (f Filter) clauses() ([]string, []any) {
	var preds []string
	var args []any

	if f.Search != "" {
		preds = append(preds, "(name LIKE ? OR description LIKE ? OR location LIKE ?)")
		term := "%" + f.Search + "%"
		args = append(args, term, term, term)
	}
	if f.Type != "" {
		preds = append(preds, "type = ?")
		args = append(args, f.Type)
	}
	if f.Location != "" {
		preds = append(preds, "location = ?")
		args = append(args, f.Location)
	}
	if f.MinPrice != "" {
		preds = append(preds, "price >= ?")
		args = append(args, f.MinPrice)
	}
	if f.MaxPrice != "" {
		preds = append(preds, "price <= ?")
		args = append(args, f.MaxPrice)
	}

	return preds, args
}

// ListMeteorites returns all meteorites matching the filter, newest first.
// An empty filter returns the whole catalog. No matches is an empty result,
// not an error.
func ListMeteorites(ctx context.Context, db *sql.DB, f Filter) ([]model.Meteorite, error) {
	query := "SELECT " + meteoriteColumns + " FROM meteorites"
	preds, args := f.clauses()
	if len(preds) > 0 {
		query += " WHERE " + strings.Join(preds, " AND ")
	}
	// id breaks created_at ties in insertion order.
	query += " ORDER BY created_at DESC, id DESC"

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing meteorites: %w", err)
	}
	defer rows.Close()

	var meteorites []model.Meteorite
	for rows.Next() {
		var m model.Meteorite
		if err := rows.Scan(&m.ID, &m.Name, &m.Type, &m.Location, &m.Weight, &m.Price, &m.Description, &m.ImageURL, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning meteorite: %w", err)
		}
		meteorites = append(meteorites, m)
	}
	return meteorites, rows.Err()
}

// GetMeteorite returns a meteorite by ID, or nil when no such row exists.
func GetMeteorite(ctx context.Context, db *sql.DB, id int64) (*model.Meteorite, error) {
	m := &model.Meteorite{}
	err := db.QueryRowContext(ctx,
		"SELECT "+meteoriteColumns+" FROM meteorites WHERE id = ?", id,
	).Scan(&m.ID, &m.Name, &m.Type, &m.Location, &m.Weight, &m.Price, &m.Description, &m.ImageURL, &m.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting meteorite: %w", err)
	}
	return m, nil
}

// CreateMeteorite inserts a new meteorite and returns the stored row.
func CreateMeteorite(ctx context.Context, db *sql.DB, m model.Meteorite) (*model.Meteorite, error) {
	result, err := db.ExecContext(ctx,
		`INSERT INTO meteorites (name, type, location, weight, price, description, image_url)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		m.Name, m.Type, m.Location, m.Weight, m.Price, m.Description, m.ImageURL,
	)
	if err != nil {
		return nil, fmt.Errorf("creating meteorite: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting meteorite id: %w", err)
	}

	return GetMeteorite(ctx, db, id)
}

// CountMeteorites returns the number of stored meteorites.
func CountMeteorites(ctx context.Context, db *sql.DB) (int64, error) {
	var count int64
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM meteorites`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting meteorites: %w", err)
	}
	return count, nil
}
