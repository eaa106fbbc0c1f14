package repository

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/Houeta/employee-service/internal/models"
	"github.com/jackc/pgx/v5"
)

// FindAll retrieves all employees ordered by id.
// An empty table yields an empty, non-nil slice.
func (r *EmployeeRepository) FindAll(ctx context.Context) ([]models.Employee, error) {
	defer r.metrics.ObserveDBQuery("find_all", time.Now())

	rows, err := r.db.Query(ctx, selectAllEmployeesSQL)
	if err != nil {
		return nil, fmt.Errorf("error querying employees: %w", err)
	}
	defer rows.Close()

	employees := make([]models.Employee, 0)
	for rows.Next() {
		employee, scanErr := scanEmployee(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("error scanning employee row: %w", scanErr)
		}
		employees = append(employees, employee)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employee rows: %w", err)
	}

	return employees, nil
}

// FindByID retrieves the employee with the given id.
// When no row matches, it returns false and a nil error.
func (r *EmployeeRepository) FindByID(ctx context.Context, id int) (models.Employee, bool, error) {
	if !fitsIDColumn(id) {
		return models.Employee{}, false, nil
	}
	defer r.metrics.ObserveDBQuery("find_by_id", time.Now())

	employee, err := scanEmployee(r.db.QueryRow(ctx, selectEmployeeByIDSQL, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Employee{}, false, nil
		}
		return models.Employee{}, false, fmt.Errorf("failed to get employee %d: %w", id, err)
	}

	return employee, true, nil
}

// Save persists the employee. A zero ID inserts a new row and lets the store assign the id;
// a non-zero ID inserts or fully replaces the row with that id.
func (r *EmployeeRepository) Save(ctx context.Context, employee models.Employee) (models.Employee, error) {
	var row pgx.Row

	if employee.ID == 0 {
		defer r.metrics.ObserveDBQuery("insert", time.Now())
		row = r.db.QueryRow(ctx, insertEmployeeSQL,
			employee.FirstName,
			employee.LastName,
			employee.Age,
			employee.Designation,
			employee.PhoneNumber,
			employee.JoinedOn.Ptr(),
			employee.Address,
			employee.DateOfBirth.Ptr(),
			employee.CreatedAt.Time,
			employee.UpdatedAt.Time,
		)
	} else {
		defer r.metrics.ObserveDBQuery("upsert", time.Now())
		row = r.db.QueryRow(ctx, upsertEmployeeSQL,
			employee.ID,
			employee.FirstName,
			employee.LastName,
			employee.Age,
			employee.Designation,
			employee.PhoneNumber,
			employee.JoinedOn.Ptr(),
			employee.Address,
			employee.DateOfBirth.Ptr(),
			employee.CreatedAt.Time,
			employee.UpdatedAt.Time,
		)
	}

	saved, err := scanEmployee(row)
	if err != nil {
		return models.Employee{}, fmt.Errorf("failed to save employee: %w", err)
	}

	return saved, nil
}

// DeleteByID removes the employee with the given id. Deleting a missing id is a no-op.
func (r *EmployeeRepository) DeleteByID(ctx context.Context, id int) error {
	if !fitsIDColumn(id) {
		return nil
	}
	defer r.metrics.ObserveDBQuery("delete", time.Now())

	_, err := r.db.Exec(ctx, deleteEmployeeByIDSQL, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee %d: %w", id, err)
	}

	return nil
}

// fitsIDColumn reports whether id can be stored in the INTEGER id column.
// Ids outside that range cannot match a row.
func fitsIDColumn(id int) bool {
	return id >= math.MinInt32 && id <= math.MaxInt32
}

// scanEmployee reads one employee in employeeColumns order.
func scanEmployee(row pgx.Row) (models.Employee, error) {
	var (
		employee    models.Employee
		joinedOn    *time.Time
		dateOfBirth *time.Time
	)

	err := row.Scan(
		&employee.ID,
		&employee.FirstName,
		&employee.LastName,
		&employee.Age,
		&employee.Designation,
		&employee.PhoneNumber,
		&joinedOn,
		&employee.Address,
		&dateOfBirth,
		&employee.CreatedAt.Time,
		&employee.UpdatedAt.Time,
	)
	if err != nil {
		return models.Employee{}, err
	}

	employee.JoinedOn = models.DateFromPtr(joinedOn)
	employee.DateOfBirth = models.DateFromPtr(dateOfBirth)

	return employee, nil
}
