package database

import (
	"database/sql"
	"errors"
	"fmt"
	"tierra-media/models"
)

// ErrCountUnavailable is returned when a count query yields no row.
var ErrCountUnavailable = errors.New("inhabitant count unavailable")

type Repository struct {
	db *DB
}

func NewRepository(db *DB) *Repository {
	return &Repository{db: db}
}

const inhabitantColumns = `id, nombre, apellidos, edad, raza, ubicacion, profesion`

const insertInhabitantSQL = `
	INSERT INTO habitantes (nombre, apellidos, edad, raza, ubicacion, profesion)
	VALUES (?, ?, ?, ?, ?, ?)
`

// ==================== WRITES ====================

// InsertInhabitant stores h and returns the id assigned by SQLite.
func (r *Repository) InsertInhabitant(h *models.Inhabitant) (int64, error) {
	res, err := r.db.Exec(insertInhabitantSQL, insertArgs(h)...)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// UpdateInhabitant overwrites every field of the row with the given id.
// Text is stored as given, empty included. A missing id is not an error.
func (r *Repository) UpdateInhabitant(id int64, h *models.Inhabitant) error {
	_, err := r.db.Exec(`
		UPDATE habitantes SET
			nombre = ?,
			apellidos = ?,
			edad = ?,
			raza = ?,
			ubicacion = ?,
			profesion = ?
		WHERE id = ?
	`, h.Name, h.Surname, h.Age, h.Race, h.Location, h.Profession, id)
	return err
}

// DeleteInhabitant removes the row and reports how many rows went away (0 or 1).
func (r *Repository) DeleteInhabitant(id int64) (int64, error) {
	res, err := r.db.Exec("DELETE FROM habitantes WHERE id = ?", id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// SeedInhabitants inserts entries in one transaction, and only when the table
// is empty. It returns how many rows were written. On failure nothing is
// kept, so a later seed starts again from an empty table.
func (r *Repository) SeedInhabitants(entries []models.Inhabitant) (int, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin seed: %w", err)
	}
	defer tx.Rollback()

	var n int
	if err := tx.QueryRow(`SELECT count(*) FROM habitantes`).Scan(&n); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrCountUnavailable, err)
	}
	if n > 0 {
		return 0, nil
	}

	stmt, err := tx.Prepare(insertInhabitantSQL)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	for i := range entries {
		if _, err := stmt.Exec(insertArgs(&entries[i])...); err != nil {
			return 0, fmt.Errorf("seed %s %s: %w", entries[i].Name, entries[i].Surname, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit seed: %w", err)
	}
	return len(entries), nil
}

// insertArgs orders h's fields as the insert statement expects.
// Empty text is bound as NULL so the NOT NULL constraints reject it.
func insertArgs(h *models.Inhabitant) []any {
	return []any{
		nullIfEmpty(h.Name),
		nullIfEmpty(h.Surname),
		h.Age,
		nullIfEmpty(h.Race),
		nullIfEmpty(h.Location),
		nullIfEmpty(h.Profession),
	}
}

func nullIfEmpty(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// ==================== READS ====================

func (r *Repository) GetInhabitant(id int64) (*models.Inhabitant, error) {
	row := r.db.QueryRow(`SELECT `+inhabitantColumns+` FROM habitantes WHERE id = ?`, id)

	h, err := scanInhabitant(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return h, nil
}

func (r *Repository) CountInhabitants() (int, error) {
	return r.count(`SELECT count(*) FROM habitantes`)
}

func (r *Repository) CountInhabitantsByRace(race string) (int, error) {
	return r.count(`SELECT count(*) FROM habitantes WHERE raza = ?`, race)
}

func (r *Repository) CountInhabitantsByProfession(profession string) (int, error) {
	return r.count(`SELECT count(*) FROM habitantes WHERE profesion = ?`, profession)
}

func (r *Repository) count(query string, args ...any) (int, error) {
	var n int
	err := r.db.QueryRow(query, args...).Scan(&n)
	if err == sql.ErrNoRows {
		return 0, ErrCountUnavailable
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrCountUnavailable, err)
	}
	return n, nil
}

// ListInhabitantsByRace returns exact race matches, newest id first.
func (r *Repository) ListInhabitantsByRace(race string) ([]models.Inhabitant, error) {
	list, err := r.list(`SELECT `+inhabitantColumns+` FROM habitantes WHERE raza = ? ORDER BY id DESC`, race)
	if err != nil {
		return nil, fmt.Errorf("list inhabitants by race: %w", err)
	}
	return list, nil
}

// ListInhabitantsByProfession returns exact profession matches, newest id first.
func (r *Repository) ListInhabitantsByProfession(profession string) ([]models.Inhabitant, error) {
	list, err := r.list(`SELECT `+inhabitantColumns+` FROM habitantes WHERE profesion = ? ORDER BY id DESC`, profession)
	if err != nil {
		return nil, fmt.Errorf("list inhabitants by profession: %w", err)
	}
	return list, nil
}

func (r *Repository) list(query string, args ...any) ([]models.Inhabitant, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	// Initialize with empty slice to avoid returning nil
	inhabitants := make([]models.Inhabitant, 0)
	for rows.Next() {
		h, err := scanInhabitant(rows)
		if err != nil {
			return nil, err
		}
		inhabitants = append(inhabitants, *h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return inhabitants, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanInhabitant(s scanner) (*models.Inhabitant, error) {
	var h models.Inhabitant
	if err := s.Scan(&h.ID, &h.Name, &h.Surname, &h.Age, &h.Race, &h.Location, &h.Profession); err != nil {
		return nil, err
	}
	return &h, nil
}
