package storage

import (
	"database/sql"
	"fmt"

	"github.com/vovakirdan/core-defense/internal/meta"
)

// LoadProfile returns the stored profile for name, or an empty profile if
// the player has none yet.
func (s *Store) LoadProfile(name string) (*meta.Profile, error) {
	p := meta.NewProfile(name)

	err := s.db.QueryRow(
		"SELECT currency, best_score FROM profiles WHERE name = ?",
		name,
	).Scan(&p.Currency, &p.BestScore)
	if err == sql.ErrNoRows {
		return p, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot load profile %s: %w", name, err)
	}

	rows, err := s.db.Query(
		"SELECT category, level FROM upgrade_levels WHERE profile = ?",
		name,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot load upgrades for %s: %w", name, err)
	}
	defer rows.Close()

	for rows.Next() {
		var category string
		var level int
		if err := rows.Scan(&category, &level); err != nil {
			return nil, fmt.Errorf("storage: cannot scan upgrade row: %w", err)
		}
		// Categories dropped from the shop are ignored rather than fatal.
		if c, err := meta.ParseCategory(category); err == nil {
			p.Levels[c] = level
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return p, nil
}

// SaveProfile writes the profile and its upgrade levels in one transaction.
func (s *Store) SaveProfile(p *meta.Profile) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	_, err = tx.Exec(
		`INSERT INTO profiles (name, currency, best_score, updated_at)
		 VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(name) DO UPDATE SET
		   currency = excluded.currency,
		   best_score = excluded.best_score,
		   updated_at = CURRENT_TIMESTAMP`,
		p.Name, p.Currency, p.BestScore,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save profile %s: %w", p.Name, err)
	}

	for c, level := range p.Levels {
		_, err := tx.Exec(
			`INSERT INTO upgrade_levels (profile, category, level)
			 VALUES (?, ?, ?)
			 ON CONFLICT(profile, category) DO UPDATE SET level = excluded.level`,
			p.Name, string(c), level,
		)
		if err != nil {
			return fmt.Errorf("storage: cannot save upgrade %s for %s: %w", c, p.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit profile %s: %w", p.Name, err)
	}
	return nil
}

// Profiles lists every stored profile name.
func (s *Store) Profiles() ([]string, error) {
	rows, err := s.db.Query("SELECT name FROM profiles ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot list profiles: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("storage: cannot scan profile row: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
