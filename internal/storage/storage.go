// Package storage defines the Storage interface, the contract that any
// database backend must satisfy to hold student records.
//
// The service layer depends only on this interface, so the concrete
// backend (sqlite, postgres, memory) is chosen once in main.go and tests
// can pass a fake.
package storage

import (
	"context"

	"github.com/aanand-mishra/students-service/internal/types"
)

// Storage is the database contract.
//
// Every method takes a context so request cancellation reaches the
// database driver. Implementations must be safe for concurrent use.
type Storage interface {
	// ListStudents returns every student in the store. The order is
	// whatever the backend returns. Returns an empty slice (not nil) if
	// there are no students.
	ListStudents(ctx context.Context) ([]types.Student, error)

	// GetStudentByID fetches a single student by primary key. The bool
	// is false when no record has that id; that is not an error.
	GetStudentByID(ctx context.Context, id int64) (types.Student, bool, error)

	// SaveStudent inserts s, ignoring s.ID, and returns the persisted
	// record with its newly assigned id.
	SaveStudent(ctx context.Context, s types.Student) (types.Student, error)

	// DeleteStudentByID removes a student record permanently. Deleting
	// an id that does not exist is a no-op.
	DeleteStudentByID(ctx context.Context, id int64) error

	// ExistsStudentByID reports whether a record with id is present.
	ExistsStudentByID(ctx context.Context, id int64) (bool, error)

	// ExistsStudentByEmail reports whether a record with exactly this
	// email is present. Matching is case-sensitive.
	ExistsStudentByEmail(ctx context.Context, email string) (bool, error)

	// Ping checks that the backend is reachable.
	Ping(ctx context.Context) error

	// Close releases the backend's resources.
	Close() error
}
