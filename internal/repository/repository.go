package repository

import (
	"context"

	"github.com/Houeta/employee-service/internal/metrics"
	"github.com/Houeta/employee-service/internal/models"
)

// CrudRepository defines the basic persistence operations for one entity type keyed by ID.
// Implementations are pure pass-throughs to the store and never translate store errors.
type CrudRepository[T any, ID comparable] interface {
	// FindAll returns every stored entity.
	FindAll(ctx context.Context) ([]T, error)
	// FindByID returns the entity with the given id. The boolean is false when no entity matches.
	FindByID(ctx context.Context, id ID) (T, bool, error)
	// Save inserts the entity when its id is unset, or replaces the stored row otherwise.
	// It returns the row as persisted, including store-assigned fields.
	Save(ctx context.Context, entity T) (T, error)
	// DeleteByID removes the entity with the given id. Removing a missing id is not an error.
	DeleteByID(ctx context.Context, id ID) error
}

// EmployeeRepository is the PostgreSQL backed CrudRepository for employees.
type EmployeeRepository struct {
	db      Database
	metrics *metrics.Metrics
}

var _ CrudRepository[models.Employee, int] = (*EmployeeRepository)(nil)

// NewEmployeeRepository creates a new instance of EmployeeRepository with the provided Database.
// The metrics argument may be nil, in which case query durations are not recorded.
func NewEmployeeRepository(db Database, m *metrics.Metrics) *EmployeeRepository {
	return &EmployeeRepository{db: db, metrics: m}
}
