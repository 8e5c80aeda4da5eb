package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// GetPreference returns the stored value for the visitor's key.
func (d *DB) GetPreference(visitorID, key string) (string, bool, error) {
	if visitorID == "" {
		return "", false, ErrNoVisitor
	}
	var value string
	err := d.QueryRow(
		`SELECT value FROM preferences WHERE visitor_id = ? AND key = ?`,
		visitorID, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading preference %s: %w", key, err)
	}
	return value, true, nil
}

// SetPreference stores value for the visitor's key, replacing any previous
// value.
func (d *DB) SetPreference(visitorID, key, value string) error {
	if visitorID == "" {
		return ErrNoVisitor
	}
	_, err := d.Exec(`
		INSERT INTO preferences (visitor_id, key, value, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(visitor_id, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, visitorID, key, value, time.Now().UTC().Format(timeLayout))
	if err != nil {
		return fmt.Errorf("writing preference %s: %w", key, err)
	}
	return nil
}

// PreferenceCounts returns how many visitors stored each value for key.
func (d *DB) PreferenceCounts(key string) (map[string]int64, error) {
	rows, err := d.Query(`SELECT value, COUNT(*) FROM preferences WHERE key = ? GROUP BY value`, key)
	if err != nil {
		return nil, fmt.Errorf("counting preferences: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var value string
		var n int64
		if err := rows.Scan(&value, &n); err != nil {
			return nil, fmt.Errorf("scanning preference count: %w", err)
		}
		counts[value] = n
	}
	return counts, rows.Err()
}

// Visitor scopes preferences to one visitor. It satisfies theme.Store.
type Visitor struct {
	db *DB
	id string
}

// ForVisitor returns the preference store for a visitor.
func (d *DB) ForVisitor(id string) *Visitor {
	return &Visitor{db: d, id: id}
}

func (v *Visitor) Get(key string) (string, bool, error) {
	return v.db.GetPreference(v.id, key)
}

func (v *Visitor) Set(key, value string) error {
	return v.db.SetPreference(v.id, key, value)
}
