package service_test

import (
	"context"
	"sort"
	"sync"

	"github.com/Houeta/employee-service/internal/models"
)

// memoryRepository is an in-memory repository.CrudRepository with the same upsert
// semantics as the PostgreSQL one.
type memoryRepository struct {
	mu     sync.Mutex
	rows   map[int]models.Employee
	nextID int
	saves  int

	findErr   error
	saveErr   error
	deleteErr error
}

func newMemoryRepository(seed ...models.Employee) *memoryRepository {
	repo := &memoryRepository{rows: make(map[int]models.Employee), nextID: 1}
	for _, employee := range seed {
		repo.rows[employee.ID] = employee
		if employee.ID >= repo.nextID {
			repo.nextID = employee.ID + 1
		}
	}
	return repo
}

func (r *memoryRepository) FindAll(_ context.Context) ([]models.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.findErr != nil {
		return nil, r.findErr
	}

	employees := make([]models.Employee, 0, len(r.rows))
	for _, employee := range r.rows {
		employees = append(employees, employee)
	}
	sort.Slice(employees, func(i, j int) bool { return employees[i].ID < employees[j].ID })

	return employees, nil
}

func (r *memoryRepository) FindByID(_ context.Context, id int) (models.Employee, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.findErr != nil {
		return models.Employee{}, false, r.findErr
	}

	employee, ok := r.rows[id]
	return employee, ok, nil
}

func (r *memoryRepository) Save(_ context.Context, employee models.Employee) (models.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.saveErr != nil {
		return models.Employee{}, r.saveErr
	}

	if employee.ID == 0 {
		employee.ID = r.nextID
	}
	if employee.ID >= r.nextID {
		r.nextID = employee.ID + 1
	}
	r.rows[employee.ID] = employee
	r.saves++

	return employee, nil
}

func (r *memoryRepository) DeleteByID(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.deleteErr != nil {
		return r.deleteErr
	}

	delete(r.rows, id)
	return nil
}
