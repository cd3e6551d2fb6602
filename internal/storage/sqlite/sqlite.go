// Package sqlite provides a SQLite-backed implementation of the
// storage.Storage interface using database/sql and mattn/go-sqlite3.
//
// It follows the same rules as the in-memory directory:
//
//   - create rejects a caller-supplied id that is already taken, then
//     assigns MAX(id)+1 (1 for an empty table) regardless of that id
//   - update only touches name and email
//   - update and delete of an unknown id return storage.ErrNotFound
//
// Ids are assigned in increasing order, so ORDER BY id is insertion order.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/aanand-mishra/student-directory/internal/config"
	"github.com/aanand-mishra/student-directory/internal/storage"
	"github.com/aanand-mishra/student-directory/internal/types"

	// Registers the "sqlite3" driver with database/sql.
	_ "github.com/mattn/go-sqlite3"
)

var _ storage.Storage = (*SQLite)(nil)

// SQLite holds the connection pool. Db is exported so tests can swap in
// a mocked *sql.DB.
type SQLite struct {
	Db *sql.DB
}

// New opens the database at cfg.Storage.Path and creates the students
// table if needed. ":memory:" gives a throwaway database.
func New(cfg *config.Config) (*SQLite, error) {
	db, err := sql.Open("sqlite3", cfg.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: open db: %w", err)
	}

	// Every connection to ":memory:" is a separate database, and SQLite
	// serializes writers anyway.
	db.SetMaxOpenConns(1)

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS students (
			id    INTEGER PRIMARY KEY,
			name  TEXT    NOT NULL,
			email TEXT    NOT NULL
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite.New: create table: %w", err)
	}

	return &SQLite{Db: db}, nil
}

// Close releases the underlying database handle.
func (s *SQLite) Close() error {
	return s.Db.Close()
}

// CreateStudent runs the duplicate check, id assignment and insert in a
// single transaction.
func (s *SQLite) CreateStudent(student types.Student) (int64, error) {
	tx, err := s.Db.Begin()
	if err != nil {
		return 0, fmt.Errorf("CreateStudent: begin: %w", err)
	}
	// Rollback after Commit is a no-op.
	defer tx.Rollback()

	var taken int
	err = tx.QueryRow("SELECT COUNT(1) FROM students WHERE id = ?", student.ID).Scan(&taken)
	if err != nil {
		return 0, fmt.Errorf("CreateStudent: check id: %w", err)
	}
	if taken > 0 {
		return 0, storage.ErrConflict
	}

	var maxID int64
	err = tx.QueryRow("SELECT COALESCE(MAX(id), 0) FROM students").Scan(&maxID)
	if err != nil {
		return 0, fmt.Errorf("CreateStudent: max id: %w", err)
	}
	id := maxID + 1

	_, err = tx.Exec(
		"INSERT INTO students (id, name, email) VALUES (?, ?, ?)",
		id, student.Name, student.Email,
	)
	if err != nil {
		return 0, fmt.Errorf("CreateStudent: exec: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("CreateStudent: commit: %w", err)
	}

	return id, nil
}

func (s *SQLite) GetStudentByID(id int64) (types.Student, error) {
	stmt, err := s.Db.Prepare(
		"SELECT id, name, email FROM students WHERE id = ? LIMIT 1",
	)
	if err != nil {
		return types.Student{}, fmt.Errorf("GetStudentByID: prepare: %w", err)
	}
	defer stmt.Close()

	var student types.Student
	err = stmt.QueryRow(id).Scan(&student.ID, &student.Name, &student.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Student{}, storage.ErrNotFound
		}
		return types.Student{}, fmt.Errorf("GetStudentByID: scan: %w", err)
	}

	return student, nil
}

func (s *SQLite) GetStudents() ([]types.Student, error) {
	stmt, err := s.Db.Prepare("SELECT id, name, email FROM students ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("GetStudents: prepare: %w", err)
	}
	defer stmt.Close()

	rows, err := stmt.Query()
	if err != nil {
		return nil, fmt.Errorf("GetStudents: query: %w", err)
	}
	defer rows.Close()

	students := make([]types.Student, 0)
	for rows.Next() {
		var student types.Student
		if err := rows.Scan(&student.ID, &student.Name, &student.Email); err != nil {
			return nil, fmt.Errorf("GetStudents: scan row: %w", err)
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("GetStudents: rows iteration: %w", err)
	}

	return students, nil
}

// UpdateStudentByID ignores student.ID; the path id decides the row.
func (s *SQLite) UpdateStudentByID(id int64, student types.Student) (types.Student, error) {
	stmt, err := s.Db.Prepare("UPDATE students SET name = ?, email = ? WHERE id = ?")
	if err != nil {
		return types.Student{}, fmt.Errorf("UpdateStudentByID: prepare: %w", err)
	}
	defer stmt.Close()

	result, err := stmt.Exec(student.Name, student.Email, id)
	if err != nil {
		return types.Student{}, fmt.Errorf("UpdateStudentByID: exec: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return types.Student{}, fmt.Errorf("UpdateStudentByID: rows affected: %w", err)
	}
	if affected == 0 {
		return types.Student{}, storage.ErrNotFound
	}

	return s.GetStudentByID(id)
}

func (s *SQLite) DeleteStudentByID(id int64) error {
	stmt, err := s.Db.Prepare("DELETE FROM students WHERE id = ?")
	if err != nil {
		return fmt.Errorf("DeleteStudentByID: prepare: %w", err)
	}
	defer stmt.Close()

	result, err := stmt.Exec(id)
	if err != nil {
		return fmt.Errorf("DeleteStudentByID: exec: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("DeleteStudentByID: rows affected: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}

	return nil
}
