// Package service holds the employee business logic: timestamping writes and resolving
// missing records. Persistence is delegated to a repository.CrudRepository.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Houeta/employee-service/internal/models"
	"github.com/Houeta/employee-service/internal/repository"
)

// ErrEmployeeNotFound is returned when no employee exists for the requested id.
var ErrEmployeeNotFound = errors.New("employee not found")

// EmployeeService implements the employee use cases on top of a repository.
type EmployeeService struct {
	log  *slog.Logger
	repo repository.CrudRepository[models.Employee, int]
	now  func() time.Time
}

// Option configures an EmployeeService.
type Option func(*EmployeeService)

// WithClock replaces the clock used to stamp createdAt and updatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *EmployeeService) {
		s.now = now
	}
}

// NewEmployeeService creates a new EmployeeService. Timestamps are taken in UTC by default.
func NewEmployeeService(
	log *slog.Logger,
	repo repository.CrudRepository[models.Employee, int],
	opts ...Option,
) *EmployeeService {
	svc := &EmployeeService{
		log:  log,
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(svc)
	}

	return svc
}

// GetAllEmployees returns every stored employee.
func (s *EmployeeService) GetAllEmployees(ctx context.Context) ([]models.Employee, error) {
	return s.repo.FindAll(ctx)
}

// GetEmployeeByID returns the employee with the given id, or ErrEmployeeNotFound.
func (s *EmployeeService) GetEmployeeByID(ctx context.Context, id int) (models.Employee, error) {
	employee, found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return models.Employee{}, err
	}
	if !found {
		s.log.InfoContext(ctx, "Employee doesn't exist", "id", id)
		return models.Employee{}, ErrEmployeeNotFound
	}

	return employee, nil
}

// SaveEmployee stamps both timestamps with the current time and persists the employee.
// Any caller supplied timestamps are overwritten. A non-zero id replaces the stored row.
func (s *EmployeeService) SaveEmployee(ctx context.Context, employee models.Employee) (models.Employee, error) {
	now := models.NewLocalDateTime(s.now())
	employee.CreatedAt = now
	employee.UpdatedAt = now

	saved, err := s.repo.Save(ctx, employee)
	if err != nil {
		return models.Employee{}, err
	}

	s.log.InfoContext(ctx, "Employee saved successfully", "id", saved.ID)

	return saved, nil
}

// UpdateEmployee replaces an existing employee, keeping its original createdAt.
// It returns ErrEmployeeNotFound and writes nothing when the id is unknown.
//
// The read and the write are not serialized, so two concurrent updates of the same id
// may overwrite each other.
func (s *EmployeeService) UpdateEmployee(ctx context.Context, employee models.Employee) (models.Employee, error) {
	existing, found, err := s.repo.FindByID(ctx, employee.ID)
	if err != nil {
		return models.Employee{}, fmt.Errorf("failed to load employee %d: %w", employee.ID, err)
	}
	if !found {
		s.log.InfoContext(ctx, "Employee to update doesn't exist", "id", employee.ID)
		return models.Employee{}, ErrEmployeeNotFound
	}

	employee.CreatedAt = existing.CreatedAt
	employee.UpdatedAt = models.NewLocalDateTime(s.now())

	updated, err := s.repo.Save(ctx, employee)
	if err != nil {
		return models.Employee{}, err
	}

	s.log.InfoContext(ctx, "Employee updated successfully", "id", updated.ID)

	return updated, nil
}

// DeleteEmployeeByID removes the employee with the given id. Unknown ids are ignored.
func (s *EmployeeService) DeleteEmployeeByID(ctx context.Context, id int) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}

	s.log.DebugContext(ctx, "Employee deleted", "id", id)

	return nil
}
