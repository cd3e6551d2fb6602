package memory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/student-directory/internal/directory"
	"github.com/aanand-mishra/student-directory/internal/storage"
	"github.com/aanand-mishra/student-directory/internal/types"
)

func TestMemory_CRUD(t *testing.T) {
	m := New(directory.New())

	id, err := m.CreateStudent(types.Student{Name: "Rakesh", Email: "rakesh@test.com"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	got, err := m.GetStudentByID(id)
	require.NoError(t, err)
	assert.Equal(t, types.Student{ID: 1, Name: "Rakesh", Email: "rakesh@test.com"}, got)

	updated, err := m.UpdateStudentByID(id, types.Student{ID: 77, Name: "Rakesh Updated", Email: "new@test.com"})
	require.NoError(t, err)
	assert.Equal(t, types.Student{ID: 1, Name: "Rakesh Updated", Email: "new@test.com"}, updated)

	students, err := m.GetStudents()
	require.NoError(t, err)
	assert.Equal(t, []types.Student{updated}, students)

	require.NoError(t, m.DeleteStudentByID(id))

	students, err = m.GetStudents()
	require.NoError(t, err)
	assert.NotNil(t, students)
	assert.Empty(t, students)
}

func TestMemory_Errors(t *testing.T) {
	m := New(directory.New())
	_, err := m.CreateStudent(types.Student{Name: "John Doe", Email: "john.doe@example.com"})
	require.NoError(t, err)

	_, err = m.CreateStudent(types.Student{ID: 1, Name: "Duplicate", Email: "dup@example.com"})
	assert.ErrorIs(t, err, storage.ErrConflict)

	_, err = m.GetStudentByID(999)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	_, err = m.UpdateStudentByID(999, types.Student{Name: "x", Email: "y"})
	assert.ErrorIs(t, err, storage.ErrNotFound)

	assert.ErrorIs(t, m.DeleteStudentByID(999), storage.ErrNotFound)

	students, err := m.GetStudents()
	require.NoError(t, err)
	assert.Len(t, students, 1)
}

func TestMemory_ConcurrentCreate(t *testing.T) {
	m := New(directory.New())

	const n = 50
	var wg sync.WaitGroup
	ids := make(chan int64, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, err := m.CreateStudent(types.Student{Name: "student", Email: "s@example.com"})
			assert.NoError(t, err)
			ids <- id
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool, n)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
}

func TestSeed(t *testing.T) {
	seed := []types.Student{
		{ID: 10, Name: "John Doe", Email: "john.doe@example.com"},
		{ID: 20, Name: "Jane Smith", Email: "jane.smith@example.com"},
	}

	m := New(directory.New())

	n, err := storage.Seed(m, seed)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	students, err := m.GetStudents()
	require.NoError(t, err)
	require.Len(t, students, 2)
	assert.Equal(t, int64(1), students[0].ID)
	assert.Equal(t, int64(2), students[1].ID)

	n, err = storage.Seed(m, seed)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	students, err = m.GetStudents()
	require.NoError(t, err)
	assert.Len(t, students, 2)
}
