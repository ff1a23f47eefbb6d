package nucdata

import (
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

// DB reads decay data from a site sqlite decay-data file with the schema
//
//	CREATE TABLE nuclides (name TEXT PRIMARY KEY, half_life_s REAL NOT NULL);
//	CREATE TABLE gammas (nuclide TEXT NOT NULL, energy_kev REAL NOT NULL,
//	                     branch_pct REAL NOT NULL);
//
// Nuclide names in the file are expected in canonical form ("Zr97").
type DB struct {
	db *sql.DB
}

// OpenDB opens a decay-data file.
func OpenDB(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open decay data %s: %w", path, err)
	}
	return &DB{db: db}, nil
}

// Close releases the underlying database handle.
func (d *DB) Close() error {
	return d.db.Close()
}

// HalfLife implements Provider.
func (d *DB) HalfLife(nuclide string) (float64, error) {
	name, err := Canonical(nuclide)
	if err != nil {
		return 0, err
	}

	var hl float64
	err = d.db.QueryRow(`SELECT half_life_s FROM nuclides WHERE name = ?`, name).Scan(&hl)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("%s: %w", name, ErrUnknownNuclide)
	}
	if err != nil {
		return 0, fmt.Errorf("query half-life for %s: %w", name, err)
	}
	if hl <= 0 {
		return 0, fmt.Errorf("%s: decay data file has non-positive half-life %g", name, hl)
	}
	return hl, nil
}

// Gammas implements Provider.
func (d *DB) Gammas(nuclide string) ([]Gamma, error) {
	name, err := Canonical(nuclide)
	if err != nil {
		return nil, err
	}

	rows, err := d.db.Query(
		`SELECT energy_kev, branch_pct FROM gammas WHERE nuclide = ? ORDER BY branch_pct DESC`, name)
	if err != nil {
		return nil, fmt.Errorf("query gammas for %s: %w", name, err)
	}
	defer func() { _ = rows.Close() }()

	var out []Gamma
	for rows.Next() {
		var g Gamma
		if err := rows.Scan(&g.EnergyKeV, &g.BranchPct); err != nil {
			return nil, fmt.Errorf("scan gamma for %s: %w", name, err)
		}
		out = append(out, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read gammas for %s: %w", name, err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrUnknownNuclide)
	}
	return out, nil
}
