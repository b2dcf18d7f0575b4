// Package student holds the business rules for student records.
//
// It sits between the HTTP handlers and the storage layer: handlers
// decode and validate requests, this package enforces the rules that
// need the store (unique email, existing id), and storage persists.
//
// The service keeps no state. Add and Delete each issue a check and then
// a mutation as two separate store calls with nothing holding them
// together, so two concurrent callers can both pass the check. The
// UNIQUE(email) index in the sql backends is what finally rejects a
// duplicate that slips through; that surfaces as a plain store error.
package student

import (
	"context"
	"fmt"

	"github.com/aanand-mishra/students-service/internal/storage"
	"github.com/aanand-mishra/students-service/internal/types"
)

// Service orchestrates reads and validated mutations against a store.
type Service struct {
	store storage.Storage
}

// NewService returns a Service backed by store.
func NewService(store storage.Storage) *Service {
	return &Service{store: store}
}

// ListAll returns every student in the order the store returns them.
func (s *Service) ListAll(ctx context.Context) ([]types.Student, error) {
	students, err := s.store.ListStudents(ctx)
	if err != nil {
		return nil, fmt.Errorf("ListAll: %w", err)
	}
	return students, nil
}

// FindByID returns the student with id. found is false when there is
// none; absence is not an error.
func (s *Service) FindByID(ctx context.Context, id int64) (student types.Student, found bool, err error) {
	student, found, err = s.store.GetStudentByID(ctx, id)
	if err != nil {
		return types.Student{}, false, fmt.Errorf("FindByID: %w", err)
	}
	return student, found, nil
}

// Add persists student unless its email is already taken, in which case
// it returns *DuplicateEmailError and saves nothing. The returned student
// carries the id assigned by the store.
func (s *Service) Add(ctx context.Context, student types.Student) (types.Student, error) {
	taken, err := s.store.ExistsStudentByEmail(ctx, student.Email)
	if err != nil {
		return types.Student{}, fmt.Errorf("Add: check email: %w", err)
	}
	if taken {
		return types.Student{}, &DuplicateEmailError{Email: student.Email}
	}

	saved, err := s.store.SaveStudent(ctx, student)
	if err != nil {
		return types.Student{}, fmt.Errorf("Add: save: %w", err)
	}
	return saved, nil
}

// Delete removes the student with id. It returns *NotFoundError without
// touching the store when no such student exists.
func (s *Service) Delete(ctx context.Context, id int64) error {
	exists, err := s.store.ExistsStudentByID(ctx, id)
	if err != nil {
		return fmt.Errorf("Delete: check id: %w", err)
	}
	if !exists {
		return &NotFoundError{ID: id}
	}

	if err := s.store.DeleteStudentByID(ctx, id); err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	return nil
}
