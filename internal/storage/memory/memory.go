// Package memory provides an in-process storage.Storage backed by a map.
// Data lives only as long as the process. It backs the "memory" driver
// and the HTTP handler tests.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/aanand-mishra/students-service/internal/types"
)

// Memory is a mutex-guarded map keyed by student id.
type Memory struct {
	mu       sync.RWMutex
	students map[int64]types.Student
	lastID   int64
}

// New returns an empty store. Ids start at 1.
func New() *Memory {
	return &Memory{students: make(map[int64]types.Student)}
}

// ListStudents returns all students ordered by id.
func (m *Memory) ListStudents(_ context.Context) ([]types.Student, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	students := make([]types.Student, 0, len(m.students))
	for _, s := range m.students {
		students = append(students, s)
	}
	sort.Slice(students, func(i, j int) bool { return students[i].ID < students[j].ID })

	return students, nil
}

func (m *Memory) GetStudentByID(_ context.Context, id int64) (types.Student, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.students[id]
	return s, ok, nil
}

// SaveStudent stores a copy of s under the next id. It does not enforce
// email uniqueness; that is the caller's job.
func (m *Memory) SaveStudent(_ context.Context, s types.Student) (types.Student, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lastID++
	s.ID = m.lastID
	m.students[s.ID] = s

	return s, nil
}

func (m *Memory) DeleteStudentByID(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.students, id)
	return nil
}

func (m *Memory) ExistsStudentByID(_ context.Context, id int64) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.students[id]
	return ok, nil
}

func (m *Memory) ExistsStudentByEmail(_ context.Context, email string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, s := range m.students {
		if s.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *Memory) Ping(_ context.Context) error { return nil }

func (m *Memory) Close() error { return nil }
