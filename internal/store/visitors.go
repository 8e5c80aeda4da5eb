package store

import (
	"fmt"
	"log"
	"time"
)

// VisitorMetric is one recorded page view.
type VisitorMetric struct {
	ID        int       `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

// Stats is the admin dashboard summary.
type Stats struct {
	TotalVisitors    int64            `json:"total_visitors"`
	UniqueVisitors   int64            `json:"unique_visitors"`
	VisitorsToday    int64            `json:"visitors_today"`
	VisitorsThisWeek int64            `json:"visitors_this_week"`
	ThemeChoices     map[string]int64 `json:"theme_choices"`
	RecentVisitors   []VisitorMetric  `json:"recent_visitors"`
}

// RecordVisit stores a page view. The caller hashes the IP.
func (d *DB) RecordVisit(hashedIP, userAgent, path string, at time.Time) error {
	_, err := d.Exec(`
		INSERT INTO visitors (hashed_ip, user_agent, path, timestamp)
		VALUES (?, ?, ?, ?)
	`, hashedIP, userAgent, path, at.UTC().Format(timeLayout))
	if err != nil {
		return fmt.Errorf("recording visitor: %w", err)
	}
	return nil
}

// CleanupVisitors deletes page views older than cutoff.
func (d *DB) CleanupVisitors(cutoff time.Time) (int64, error) {
	result, err := d.Exec(`DELETE FROM visitors WHERE timestamp < ?`, cutoff.UTC().Format(timeLayout))
	if err != nil {
		return 0, fmt.Errorf("cleaning up visitors: %w", err)
	}
	n, _ := result.RowsAffected()
	if n > 0 {
		log.Printf("Privacy cleanup: Removed %d visitor records older than %s", n, cutoff.Format("2006-01-02"))
	}
	return n, nil
}

// RecentVisitors returns the latest page views, newest first.
func (d *DB) RecentVisitors(limit int) ([]VisitorMetric, error) {
	rows, err := d.Query(`
		SELECT id, hashed_ip, COALESCE(user_agent, ''), COALESCE(path, ''), timestamp
		FROM visitors
		ORDER BY timestamp DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing visitors: %w", err)
	}
	defer rows.Close()

	var visitors []VisitorMetric
	for rows.Next() {
		var v VisitorMetric
		var ts string
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &ts); err != nil {
			return nil, fmt.Errorf("scanning visitor: %w", err)
		}
		at, err := time.Parse(timeLayout, ts)
		if err != nil {
			return nil, fmt.Errorf("parsing visit time %q: %w", ts, err)
		}
		v.Timestamp = at
		visitors = append(visitors, v)
	}
	return visitors, rows.Err()
}

// Stats summarises visitors and theme choices as of now.
func (d *DB) Stats(now time.Time) (*Stats, error) {
	stats := &Stats{}

	if err := d.QueryRow(`SELECT COUNT(*) FROM visitors`).Scan(&stats.TotalVisitors); err != nil {
		return nil, err
	}
	if err := d.QueryRow(`SELECT COUNT(DISTINCT hashed_ip) FROM visitors`).Scan(&stats.UniqueVisitors); err != nil {
		return nil, err
	}

	now = now.UTC()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if err := d.QueryRow(`SELECT COUNT(*) FROM visitors WHERE timestamp >= ?`,
		midnight.Format(timeLayout)).Scan(&stats.VisitorsToday); err != nil {
		return nil, err
	}
	if err := d.QueryRow(`SELECT COUNT(*) FROM visitors WHERE timestamp >= ?`,
		now.AddDate(0, 0, -7).Format(timeLayout)).Scan(&stats.VisitorsThisWeek); err != nil {
		return nil, err
	}

	choices, err := d.PreferenceCounts("theme")
	if err != nil {
		return nil, err
	}
	stats.ThemeChoices = choices

	recent, err := d.RecentVisitors(50)
	if err != nil {
		return nil, err
	}
	stats.RecentVisitors = recent

	return stats, nil
}
