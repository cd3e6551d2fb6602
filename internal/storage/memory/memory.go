// Package memory adapts a directory.Directory to the storage.Storage
// interface. It is the default backend: nothing survives a restart.
package memory

import (
	"sync"

	"github.com/aanand-mishra/student-directory/internal/directory"
	"github.com/aanand-mishra/student-directory/internal/storage"
	"github.com/aanand-mishra/student-directory/internal/types"
)

var _ storage.Storage = (*Memory)(nil)

// Memory serializes calls into the wrapped Directory. The directory has
// no locking of its own and net/http runs each request on its own
// goroutine.
type Memory struct {
	mu  sync.Mutex
	dir *directory.Directory
}

// New wraps dir. The caller keeps ownership of dir but must not use it
// directly while Memory is serving requests.
func New(dir *directory.Directory) *Memory {
	return &Memory{dir: dir}
}

func (m *Memory) CreateStudent(student types.Student) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.dir.Add(&student); err != nil {
		return 0, err
	}
	return student.ID, nil
}

func (m *Memory) GetStudentByID(id int64) (types.Student, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	student, ok := m.dir.GetByID(id)
	if !ok {
		return types.Student{}, storage.ErrNotFound
	}
	return student, nil
}

func (m *Memory) GetStudents() ([]types.Student, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.dir.List(), nil
}

func (m *Memory) UpdateStudentByID(id int64, student types.Student) (types.Student, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	student.ID = id
	if err := m.dir.Update(&student); err != nil {
		return types.Student{}, err
	}

	updated, _ := m.dir.GetByID(id)
	return updated, nil
}

func (m *Memory) DeleteStudentByID(id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.dir.Delete(id)
}
