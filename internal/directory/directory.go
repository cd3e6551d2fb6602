// Package directory implements the student directory: an ordered,
// in-memory collection of student records with create, read, update and
// delete operations.
//
// A Directory does no locking. It expects one caller at a time; the
// memory storage adapter serializes access when it is shared between
// HTTP requests.
package directory

import (
	"github.com/aanand-mishra/student-directory/internal/storage"
	"github.com/aanand-mishra/student-directory/internal/types"
)

// Directory owns the student collection. Records are kept in insertion
// order and ids are pairwise distinct.
type Directory struct {
	students []types.Student
}

// New returns an empty Directory.
func New() *Directory {
	return &Directory{students: make([]types.Student, 0)}
}

// Len returns the number of stored students.
func (d *Directory) Len() int {
	return len(d.students)
}

// List returns a copy of all students in insertion order. The result is
// never nil.
func (d *Directory) List() []types.Student {
	out := make([]types.Student, len(d.students))
	copy(out, d.students)
	return out
}

// GetByID returns the first student with the given id. The boolean is
// false when there is no such student.
func (d *Directory) GetByID(id int64) (types.Student, bool) {
	i := d.indexOf(id)
	if i < 0 {
		return types.Student{}, false
	}
	return d.students[i], true
}

// Add appends s and writes the assigned id back into s.ID.
//
// The conflict check runs against the id the caller supplied, before it
// is replaced by max(id)+1. The first student in an empty directory gets
// id 1.
func (d *Directory) Add(s *types.Student) error {
	if s == nil {
		return storage.ErrInvalidArgument
	}
	if d.indexOf(s.ID) >= 0 {
		return storage.ErrConflict
	}

	s.ID = d.maxID() + 1
	d.students = append(d.students, *s)

	return nil
}

// Update copies Name and Email from s onto the stored student with the
// same id.
func (d *Directory) Update(s *types.Student) error {
	if s == nil {
		return storage.ErrInvalidArgument
	}

	i := d.indexOf(s.ID)
	if i < 0 {
		return storage.ErrNotFound
	}

	d.students[i].Name = s.Name
	d.students[i].Email = s.Email

	return nil
}

// Delete removes the student with the given id.
func (d *Directory) Delete(id int64) error {
	i := d.indexOf(id)
	if i < 0 {
		return storage.ErrNotFound
	}

	d.students = append(d.students[:i], d.students[i+1:]...)

	return nil
}

func (d *Directory) indexOf(id int64) int {
	for i := range d.students {
		if d.students[i].ID == id {
			return i
		}
	}
	return -1
}

// maxID is 0 for an empty directory.
func (d *Directory) maxID() int64 {
	var highest int64
	for _, s := range d.students {
		if s.ID > highest {
			highest = s.ID
		}
	}
	return highest
}
