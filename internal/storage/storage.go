// Package storage defines the Storage interface, the contract every
// student backend satisfies, together with the error kinds shared by all
// of them.
//
// Handlers depend only on this interface. The default backend is the
// in-memory directory (storage/memory); storage/sqlite keeps the same
// semantics on top of a SQLite file.
package storage

import (
	"errors"
	"fmt"

	"github.com/aanand-mishra/student-directory/internal/types"
)

// Error kinds surfaced by every backend. Compare with errors.Is: backends
// may wrap them with extra context.
var (
	// ErrInvalidArgument is returned when a nil record is passed in.
	ErrInvalidArgument = errors.New("student must not be nil")

	// ErrConflict is returned by create when the supplied id is taken.
	ErrConflict = errors.New("student with this id already exists")

	// ErrNotFound is returned when no student has the requested id.
	ErrNotFound = errors.New("student not found")
)

// Storage is the student persistence contract.
type Storage interface {
	// CreateStudent adds a student and returns the id assigned to it.
	// A non-zero student.ID that is already in use yields ErrConflict.
	CreateStudent(student types.Student) (int64, error)

	// GetStudentByID returns ErrNotFound when the id is unknown.
	GetStudentByID(id int64) (types.Student, error)

	// GetStudents returns every student in insertion order.
	// The slice is empty, never nil, when there are no students.
	GetStudents() ([]types.Student, error)

	// UpdateStudentByID overwrites name and email of an existing student
	// and returns the stored record. The id itself never changes.
	UpdateStudentByID(id int64, student types.Student) (types.Student, error)

	// DeleteStudentByID removes a student permanently.
	DeleteStudentByID(id int64) error
}

// Seed loads students into s when it holds no records yet and reports
// how many were inserted. A non-empty storage is left untouched so that
// restarting against a SQLite file does not duplicate the seed.
func Seed(s Storage, students []types.Student) (int, error) {
	existing, err := s.GetStudents()
	if err != nil {
		return 0, fmt.Errorf("Seed: list: %w", err)
	}
	if len(existing) > 0 {
		return 0, nil
	}

	for i, student := range students {
		// Seed entries never carry an id of their own.
		student.ID = 0
		if _, err := s.CreateStudent(student); err != nil {
			return i, fmt.Errorf("Seed: create %q: %w", student.Name, err)
		}
	}

	return len(students), nil
}
